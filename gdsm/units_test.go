package gdsm

import (
	"math"
	"testing"
)

func TestKRJToMJysrKnownValue(t *testing.T) {
	// 1 K_RJ at 1 GHz: 2*(nu/c)^2*kB*1e20 ~ 0.0307 MJy/sr.
	got := KRJToMJysr(1, 1e9)
	const want = 0.0307231
	if math.Abs(got-want) > 1e-4*want {
		t.Fatalf("got %v want ~%v", got, want)
	}
}

func TestConversionsScaleLinearly(t *testing.T) {
	for _, hz := range []float64{1e8, 1e9, 1e11} {
		if diff := KRJToMJysr(3, hz) - 3*KRJToMJysr(1, hz); math.Abs(diff) > 1e-12 {
			t.Fatalf("KRJ at %g Hz not linear in temperature: %v", hz, diff)
		}
		if diff := KCMBToMJysr(3, hz) - 3*KCMBToMJysr(1, hz); math.Abs(diff) > 1e-12 {
			t.Fatalf("KCMB at %g Hz not linear in temperature: %v", hz, diff)
		}
	}
}

func TestCMBAndRJAgreeAtLowFrequency(t *testing.T) {
	// In the Rayleigh-Jeans limit h*nu << kB*T the two temperature
	// conventions coincide.
	rj := KRJToMJysr(1, 1e9)
	cmb := KCMBToMJysr(1, 1e9)
	if math.Abs(rj-cmb)/rj > 1e-3 {
		t.Fatalf("RJ %v and CMB %v diverge at 1 GHz", rj, cmb)
	}
}

func TestCMBConversionFallsBelowRJAtHighFrequency(t *testing.T) {
	// x^2*e^x/(e^x-1)^2 < 1 for x > 0, increasingly so with frequency.
	rj := KRJToMJysr(1, 5e11)
	cmb := KCMBToMJysr(1, 5e11)
	if cmb >= rj {
		t.Fatalf("expected CMB conversion %v below RJ %v at 500 GHz", cmb, rj)
	}
	if cmb/rj > 0.9 {
		t.Fatalf("ratio %v too close to 1 at 500 GHz", cmb/rj)
	}
}
