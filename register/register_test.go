package register

import "testing"

func TestAddresses(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		want uint16
	}{
		{"LoraSyncWordMsb", LoraSyncWordMsb(0).Address(), 0x0740},
		{"LoraSyncWordLsb", LoraSyncWordLsb(0).Address(), 0x0741},
		{"RandomNumberGen0", RandomNumberGen0(0).Address(), 0x0819},
		{"RxGain", RxGain(0).Address(), 0x08AC},
		{"RxGainRetention0", RxGainRetention0(0).Address(), 0x029F},
		{"RxGainRetention1", RxGainRetention1(0).Address(), 0x02A0},
		{"RxGainRetention2", RxGainRetention2(0).Address(), 0x02A1},
	}

	for _, tt := range tests {
		if tt.addr != tt.want {
			t.Errorf("%s address = 0x%04X, want 0x%04X", tt.name, tt.addr, tt.want)
		}
	}
}

func TestByteRegisterRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		if got := LoraSyncWordMsb(0).FromBits(b).Bits(); got != b {
			t.Fatalf("LoraSyncWordMsb round trip for 0x%02X = 0x%02X", b, got)
		}
		if got := RandomNumberGen0(0).FromBits(b).Bits(); got != b {
			t.Fatalf("RandomNumberGen0 round trip for 0x%02X = 0x%02X", b, got)
		}
	}
}

func TestRxGainCodec(t *testing.T) {
	tests := []struct {
		value byte
		want  RxGainSetting
	}{
		{value: 0x94, want: RxGainPowerSaving},
		{value: 0x96, want: RxGainBoosted},
		{value: 0x00, want: RxGainUnknown},
		// Undefined codes decode to the unknown tag rather than failing;
		// the hardware owns this register's contents.
		{value: 0x95, want: RxGainUnknown},
		{value: 0xFF, want: RxGainUnknown},
	}

	for _, tt := range tests {
		if got := RxGain(0).FromBits(tt.value).Setting(); got != tt.want {
			t.Errorf("FromBits(0x%02X).Setting() = 0x%02X, want 0x%02X", tt.value, byte(got), byte(tt.want))
		}
	}

	// Defined settings encode to their own code.
	if got := RxGain(RxGainBoosted).Bits(); got != 0x96 {
		t.Errorf("RxGain(boosted).Bits() = 0x%02X, want 0x96", got)
	}
}
