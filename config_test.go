package spiraltree

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestRevealDelay(t *testing.T) {
	cfg := DefaultConfig()
	// 2000·0.0015 + 2.0 + 0.5
	if got := cfg.RevealDelay(); !approxEqual(got, 5.5, 1e-9) {
		t.Errorf("RevealDelay() = %f, want 5.5", got)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"seed": 9,
		"tree": {"count": 500, "palette": ["#ffffff"]},
		"growth": {"easing": "outQuad"}
	}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 9 || cfg.Tree.Count != 500 || cfg.Growth.Easing != "outQuad" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.Tree.Height != def.Tree.Height || cfg.Physics.Friction != def.Physics.Friction {
		t.Error("absent fields lost their defaults")
	}
	if len(cfg.Tree.Palette) != 1 {
		t.Errorf("palette len = %d, want 1", len(cfg.Tree.Palette))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "parse config"},
		{"zero count", `{"tree": {"count": 0}}`, "tree count"},
		{"empty palette", `{"tree": {"palette": []}}`, "palette is empty"},
		{"bad palette", `{"tree": {"palette": ["nope"]}}`, "palette entry 0"},
		{"friction one", `{"physics": {"friction": 1}}`, "friction"},
		{"unknown easing", `{"growth": {"easing": "wobble"}}`, "unknown easing"},
		{"bad ornament easing", `{"ambient": {"ornamentEasing": "wobble"}}`, "ornament"},
		{"clip range", `{"camera": {"near": 10, "far": 5}}`, "clip range"},
		{"zero duration", `{"growth": {"duration": 0}}`, "growth duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEasingByName(t *testing.T) {
	for name := range easings {
		if fn, err := easingByName(name); err != nil || fn == nil {
			t.Errorf("easingByName(%q) = %v, %v", name, fn, err)
		}
	}
	if fn, err := easingByName(""); err != nil || fn == nil {
		t.Error("empty name should resolve to linear")
	}
}

func TestParsePalette(t *testing.T) {
	got, err := parsePalette([]string{"#ff0000", "#00ffff"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != (Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("palette[0] = %+v", got[0])
	}
	if got[1] != (Color{R: 0, G: 1, B: 1, A: 1}) {
		t.Errorf("palette[1] = %+v", got[1])
	}
}
