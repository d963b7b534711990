package molview

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestNewRendererErrors(t *testing.T) {
	if _, err := NewBondRenderer(nil); !errors.Is(err, ErrNilCanvas) {
		t.Errorf("nil canvas error = %v, want ErrNilCanvas", err)
	}
	bad := DefaultConfig()
	bad.Bond.WidthRatio = 0
	if _, err := NewBondRenderer(NewScene(), WithConfig(bad)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, want ErrInvalidConfig", err)
	}
}

func TestRendererDefaults(t *testing.T) {
	s := NewScene()
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r.Canvas() != s {
		t.Error("Canvas() did not return the canvas")
	}
	if !r.Transform().IsIdentity() || r.ScaleX() != 1 {
		t.Errorf("default transform = %+v", r.Transform())
	}
	if diff := cmp.Diff(DefaultConfig(), r.Config()); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}

	r.SetTransform(view)
	if r.ScaleX() != 10 {
		t.Errorf("ScaleX = %v, want 10", r.ScaleX())
	}
	got := r.TransformCoords(gg.Pt(0, 0), gg.Pt(1, 1))
	if diff := cmp.Diff([]gg.Point{gg.Pt(50, 50), gg.Pt(60, 40)}, got, approx); diff != "" {
		t.Errorf("TransformCoords mismatch (-want +got):\n%s", diff)
	}

	bad := DefaultConfig()
	bad.Highlight.Opacity = 2
	if err := r.SetConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SetConfig(invalid) = %v, want ErrInvalidConfig", err)
	}
	if r.Config().Highlight.Opacity != 0.15 {
		t.Error("failed SetConfig must keep the previous config")
	}
}

func TestFitTransform(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   gg.Point
		maxScale float64
		check    map[gg.Point]gg.Point
	}{
		{
			name: "width bound",
			lo:   gg.Pt(0, 0), hi: gg.Pt(4, 1),
			check: map[gg.Point]gg.Point{
				gg.Pt(0, 0): gg.Pt(10, 70),
				gg.Pt(4, 1): gg.Pt(90, 50),
				gg.Pt(2, 0.5): gg.Pt(50, 60),
			},
		},
		{
			name: "capped scale",
			lo:   gg.Pt(-1, -1), hi: gg.Pt(1, 1), maxScale: 10,
			check: map[gg.Point]gg.Point{
				gg.Pt(0, 0):  gg.Pt(50, 60),
				gg.Pt(1, 1):  gg.Pt(60, 50),
				gg.Pt(-1, 0): gg.Pt(40, 60),
			},
		},
		{
			name: "single point",
			lo:   gg.Pt(3, 3), hi: gg.Pt(3, 3),
			check: map[gg.Point]gg.Point{
				gg.Pt(3, 3): gg.Pt(50, 60),
				gg.Pt(4, 3): gg.Pt(51, 60),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FitTransform(tt.lo, tt.hi, 100, 120, 10, tt.maxScale)
			for in, want := range tt.check {
				if diff := cmp.Diff(want, m.TransformPoint(in), approx); diff != "" {
					t.Errorf("TransformPoint(%v) mismatch (-want +got):\n%s", in, diff)
				}
			}
		})
	}
}
