package entities

import (
	"testing"
	"time"
)

func TestSetModeExclusivity(t *testing.T) {
	var in Intake
	in.SetMode(ModeMundoTrabalho)
	in.SetMode(ModeGestante)

	if in.IsMT || in.IsSF || in.IsEP || in.IsCB {
		t.Fatalf("expected only is_ge set, got mt=%t sf=%t ep=%t cb=%t", in.IsMT, in.IsSF, in.IsEP, in.IsCB)
	}
	if !in.IsGE {
		t.Fatalf("expected is_ge set")
	}

	m, ok := in.ActiveMode()
	if !ok || m != ModeGestante {
		t.Fatalf("expected active mode %s, got %s ok=%t", ModeGestante, m, ok)
	}
}

func TestModeRules(t *testing.T) {
	rules := ModeRules()

	if !rules[ModeMundoTrabalho].CreateStudent || rules[ModeMundoTrabalho].CreateFicha {
		t.Fatalf("unexpected mt rule: %+v", rules[ModeMundoTrabalho])
	}
	if !rules[ModeGestante].CreateStudent || !rules[ModeGestante].CreateFicha {
		t.Fatalf("unexpected ge rule: %+v", rules[ModeGestante])
	}
	// Cesta básica creates a child case record but no student.
	if rules[ModeCestaBasica].CreateStudent || !rules[ModeCestaBasica].CreateFicha {
		t.Fatalf("unexpected cb rule: %+v", rules[ModeCestaBasica])
	}
	if rules[ModeEmpregabilidade].CreateStudent || rules[ModeEmpregabilidade].CreateFicha {
		t.Fatalf("unexpected ep rule: %+v", rules[ModeEmpregabilidade])
	}

	// Callers get a fresh copy.
	rules[ModeMundoTrabalho] = ModeRule{}
	if ModeRules()[ModeMundoTrabalho].Label == "" {
		t.Fatalf("mode table mutated through returned copy")
	}
}

func TestAgeAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"exactly 12 years of days", start.AddDate(0, 0, -12*365), 12},
		{"one day short of 12", start.AddDate(0, 0, -(12*365 - 1)), 11},
		{"fifty", start.AddDate(0, 0, -50*365), 50},
		{"just over fifty", start.AddDate(0, 0, -(50*365 + 200)), 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AgeAt(c.dob, start); got != c.want {
				t.Fatalf("AgeAt = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPrimarySlots(t *testing.T) {
	if got := SlotSaturdaySecond.PrimarySlots(); len(got) != 2 {
		t.Fatalf("expected sab_2 to have two primaries, got %v", got)
	}
	if got := SlotSundaySecond.PrimarySlots(); len(got) != 1 || got[0] != SlotSunday {
		t.Fatalf("expected dom_2 primary to be dom, got %v", got)
	}
	if got := SlotSaturdayMorning.PrimarySlots(); got != nil {
		t.Fatalf("expected no primaries for sab, got %v", got)
	}
}

func TestRecomputeSegments(t *testing.T) {
	var in Intake
	in.SetSlot(SlotSaturdayMorning, CourseSlot{StudentGroup: "220-A", AgeOK: true, Segment: SegmentMundoTrabalho})
	in.SetSlot(SlotSunday, CourseSlot{StudentGroup: "310-B", AgeOK: false, Segment: SegmentSocioFamiliar})
	in.RecomputeSegments()

	if !in.MundoTrabalho {
		t.Fatalf("expected mundo_trabalho set")
	}
	if in.SocioFamiliar {
		t.Fatalf("expected socio_familiar unset while age not approved")
	}

	slot := in.Slot(SlotSunday)
	slot.AgeOK = true
	in.SetSlot(SlotSunday, slot)
	in.RecomputeSegments()
	if !in.SocioFamiliar {
		t.Fatalf("expected socio_familiar set after age approval")
	}
}

func TestHasSlotSelected(t *testing.T) {
	var in Intake
	if in.HasSlotSelected() {
		t.Fatalf("empty intake should have no selection")
	}
	in.SetSlot(SlotSundaySecond, CourseSlot{StudentGroup: "410-C"})
	if !in.HasSlotSelected() {
		t.Fatalf("expected selection detected")
	}
}
