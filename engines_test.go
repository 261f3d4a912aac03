package otv

import "testing"

func TestEngines(t *testing.T) {
	for _, name := range []string{"pps1350", "HERMeS", "monoprop", "biprop", "mmh-nto-490N"} {
		e, err := EngineFromName(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if e.Thrust() <= 0 || e.Isp() <= 0 || e.Name() == "" {
			t.Fatalf("invalid engine %s", name)
		}
	}
	if _, err := EngineFromName("warp-drive"); err == nil {
		t.Fatal("unknown engine should return an error")
	}
	if new(PPS1350).Isp() != 1650 || new(HERMeS).Thrust() != 0.680 {
		t.Fatal("EP performance changed")
	}
}

func TestGenericEngine(t *testing.T) {
	thrust, isp := 1., 2.
	e := NewGenericEngine("custom", thrust, isp)
	if e.Thrust() != thrust || e.Isp() != isp || e.Name() != "custom" {
		t.Fatal("invalid generic engine")
	}
	if p := DefaultVehicleParams().WithEngine(e); p.Isp != isp {
		t.Fatalf("engine Isp not used: %f", p.Isp)
	}
}

func TestEngineCount(t *testing.T) {
	biprop := new(Biprop)
	for thrust, exp := range map[float64]int{0: 0, -5: 0, 1: 1, 490: 1, 491: 2, 4251.5: 9} {
		if n := EngineCount(thrust, biprop); n != exp {
			t.Fatalf("%f N requires %d engines, got %d", thrust, exp, n)
		}
	}
}
