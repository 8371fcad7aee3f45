package weights

import "testing"

func TestKindValid(t *testing.T) {
	for _, k := range Kinds() {
		if !k.Valid() {
			t.Fatalf("%v reported invalid", k)
		}
	}
	if Kind("he").Valid() {
		t.Fatal("unknown kind reported valid")
	}
}

func TestEffectiveStd(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		fan  FanInfo
		want float64
	}{
		{"xavier derives from fan", Config{Kind: Xavier}, FanInfo{In: 3, Out: 5}, 0.5},
		{"explicit std wins", Config{Kind: Xavier, Std: 0.7}, FanInfo{In: 3, Out: 5}, 0.7},
		{"normal never derives", Config{Kind: Normal}, FanInfo{In: 3, Out: 5}, 0},
		{"normal explicit", Config{Kind: Normal, Std: 1.5}, FanInfo{}, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.EffectiveStd(tc.fan); got != tc.want {
				t.Fatalf("EffectiveStd = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{Kind: Xavier, Scale: 1}, "xavier mean=0 std=auto scale=1"},
		{Config{Kind: Xavier, Std: 0.5, Scale: 1}, "xavier mean=0 std=0.5 scale=1"},
		{Config{Kind: Normal, Mean: 1, Std: 2, Scale: 3}, "normal mean=1 std=2 scale=3"},
		{Config{Kind: Constant, Constant: 4, Scale: 1}, "constant value=4 scale=1"},
	}
	for _, tc := range cases {
		if got := tc.cfg.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
