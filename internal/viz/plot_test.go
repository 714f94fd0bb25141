package viz

import (
	"strings"
	"testing"
)

func TestDilationPlot(t *testing.T) {
	out := DilationPlot(10, 60, 10)
	if !strings.Contains(out, "solar masses") {
		t.Error("caption missing from dilation plot")
	}
	if !strings.Contains(out, "photon sphere") {
		t.Error("characteristic radii legend missing")
	}
}

func TestSlowdownPlot(t *testing.T) {
	if out := SlowdownPlot(10, 60, 10); !strings.Contains(out, "slowdown") {
		t.Error("caption missing from slowdown plot")
	}
}

func TestMultiMassPlot(t *testing.T) {
	out := MultiMassPlot([]float64{3, 10, 100}, 60, 10)
	if !strings.Contains(out, "Msun") {
		t.Error("series legends missing")
	}
	if MultiMassPlot(nil, 60, 10) != "" {
		t.Error("empty mass list should yield empty output")
	}
}

func TestRedshiftPlot(t *testing.T) {
	if out := RedshiftPlot(10, 60, 10); !strings.Contains(out, "redshift") {
		t.Error("caption missing from redshift plot")
	}
}

func TestFallPlot(t *testing.T) {
	if out := FallPlot(10, 3, 60, 10); !strings.Contains(out, "fall speed") {
		t.Error("caption missing from fall plot")
	}
	out := FallPlot(10, 0.5, 60, 10)
	if !strings.Contains(out, "inside the horizon") {
		t.Errorf("start inside the horizon should explain itself, got %q", out)
	}
}

func TestReports(t *testing.T) {
	if out := BasicReport(); !strings.Contains(out, "Sagittarius") {
		t.Error("basic report missing Sagittarius A* entry")
	}
	if out := ExtremeReport(2); !strings.Contains(out, "spaghettification") && !strings.Contains(out, "Spaghettification") {
		t.Error("extreme report missing spaghettification distances")
	}
	if out := CompareReport(); !strings.Contains(out, "M87") {
		t.Error("comparison report missing M87*")
	}

	if _, err := OrbitReport(10, 4); err != nil {
		t.Fatalf("OrbitReport: %v", err)
	}
	if _, err := OrbitReport(0, 4); err == nil {
		t.Fatal("OrbitReport with zero mass should fail")
	}
	if _, err := HorizonReport(10, 2, 1); err != nil {
		t.Fatalf("HorizonReport: %v", err)
	}
	if _, err := HorizonReport(-1, 2, 1); err == nil {
		t.Fatal("HorizonReport with negative mass should fail")
	}
}
