package chip8

import "testing"

func TestKeypadPressRelease(t *testing.T) {
	var k Keypad

	if k.IsDown(0x7) {
		t.Fatal("key 0x7 down before any Press")
	}

	k.Press(0x7)
	if !k.IsDown(0x7) {
		t.Error("key 0x7 not down after Press")
	}
	if k.IsDown(0x8) {
		t.Error("key 0x8 reported down, unaffected key")
	}

	k.Release(0x7)
	if k.IsDown(0x7) {
		t.Error("key 0x7 still down after Release")
	}
}

func TestKeypadOutOfRangeIgnored(t *testing.T) {
	var k Keypad
	k.Press(16)
	k.Press(-1)
	if k.Snapshot() != 0 {
		t.Errorf("Snapshot() = %#x, want 0 after out-of-range Press", k.Snapshot())
	}
	if k.IsDown(16) || k.IsDown(-1) {
		t.Error("IsDown true for out-of-range key")
	}
}

func TestKeypadLowestSet(t *testing.T) {
	var k Keypad
	if _, ok := k.LowestSet(); ok {
		t.Fatal("LowestSet reported a key with nothing pressed")
	}

	k.Press(0xA)
	k.Press(0x3)
	key, ok := k.LowestSet()
	if !ok {
		t.Fatal("LowestSet reported nothing pressed")
	}
	if key != 0x3 {
		t.Errorf("LowestSet() = %#x, want 0x3 (lowest of 0x3 and 0xA)", key)
	}
}

func TestKeyMapCoversAllSixteenKeys(t *testing.T) {
	seen := make(map[int]bool)
	for _, hexKey := range KeyMap {
		seen[hexKey] = true
	}
	for i := 0; i < NumKeys; i++ {
		if !seen[i] {
			t.Errorf("KeyMap has no physical key mapped to hex key %X", i)
		}
	}
}
