package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/bjods/cazno-quote-api/internal/distance"
)

func TestDriveTimeFreeRadius(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 2, FreeRadius: 10}
	dt := driveTimeCost(8, 15, pricing)
	if !dt.WithinFreeRadius {
		t.Fatal("expected distance inside free radius")
	}
	if dt.Cost != 0 {
		t.Fatalf("expected zero cost, got %v", dt.Cost)
	}
}

func TestDriveTimeFreeRadiusBeatsMaxDistance(t *testing.T) {
	// Misconfigured policy where the cutoff sits inside the free radius:
	// the free radius still wins for nearby addresses.
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 2, FreeRadius: 10, MaxDistance: 5}
	dt := driveTimeCost(8, 15, pricing)
	if !dt.WithinFreeRadius || dt.Cost != 0 {
		t.Fatalf("expected free travel, got within=%v cost=%v", dt.WithinFreeRadius, dt.Cost)
	}
}

func TestDriveTimeMaxDistanceCutoff(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 2, FreeRadius: 10, MaxDistance: 50}
	dt := driveTimeCost(60, 80, pricing)
	if dt.WithinFreeRadius {
		t.Fatal("expected cutoff, not free radius")
	}
	if dt.Cost != 0 {
		t.Fatalf("expected zero cost beyond cutoff, got %v", dt.Cost)
	}
	if dt.Description != "service unavailable beyond 50 miles" {
		t.Fatalf("unexpected description %q", dt.Description)
	}
}

func TestDriveTimePerMileBillsExcessOverRadius(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 2, FreeRadius: 10}
	dt := driveTimeCost(25, 35, pricing)
	if dt.Cost != 30 {
		t.Fatalf("expected 15 billable miles at $2, got %v", dt.Cost)
	}
	if dt.WithinFreeRadius {
		t.Fatal("expected billable trip outside free radius")
	}
}

func TestDriveTimePerMileWithoutRadiusBillsAll(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 1.5}
	dt := driveTimeCost(20, 30, pricing)
	if dt.Cost != 30 {
		t.Fatalf("expected 20 miles at $1.50, got %v", dt.Cost)
	}
}

func TestDriveTimePerMinute(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMinute, Rate: 0.75}
	dt := driveTimeCost(18, 40, pricing)
	if dt.Cost != 30 {
		t.Fatalf("expected 40 minutes at $0.75, got %v", dt.Cost)
	}
}

func TestDriveTimeTieredFirstMatchFlatRate(t *testing.T) {
	pricing := DriveTimePricing{
		Type: DriveTimeTiered,
		Tiers: []DriveTimeTier{
			{MinDistance: 0, MaxDistance: 10, Rate: 0},
			{MinDistance: 10, MaxDistance: 25, Rate: 25},
			{MinDistance: 25, MaxDistance: 0, Rate: 60},
		},
	}
	// 10 sits in two tiers; the first match wins.
	if dt := driveTimeCost(10, 15, pricing); dt.Cost != 0 {
		t.Fatalf("expected first tier to match, got %v", dt.Cost)
	}
	if dt := driveTimeCost(18, 25, pricing); dt.Cost != 25 {
		t.Fatalf("expected middle tier flat rate, got %v", dt.Cost)
	}
	// Open-ended final tier.
	if dt := driveTimeCost(80, 95, pricing); dt.Cost != 60 {
		t.Fatalf("expected open-ended tier rate, got %v", dt.Cost)
	}
}

func TestDriveTimeTierGapChargesNothing(t *testing.T) {
	pricing := DriveTimePricing{
		Type: DriveTimeTiered,
		Tiers: []DriveTimeTier{
			{MinDistance: 0, MaxDistance: 10, Rate: 10},
			{MinDistance: 20, MaxDistance: 30, Rate: 40},
		},
	}
	dt := driveTimeCost(15, 20, pricing)
	if dt.Cost != 0 {
		t.Fatalf("expected no charge in tier gap, got %v", dt.Cost)
	}
	if dt.Description != "no travel charge" {
		t.Fatalf("unexpected description %q", dt.Description)
	}
}

func TestDriveTimeRoundsToCents(t *testing.T) {
	pricing := DriveTimePricing{Type: DriveTimePerMile, Rate: 0.333}
	dt := driveTimeCost(10, 14, pricing)
	if dt.Cost != 3.33 {
		t.Fatalf("expected cost rounded to cents, got %v", dt.Cost)
	}
}

type stubProvider struct {
	result distance.Result
	err    error
	calls  int
}

func (s *stubProvider) Distance(_ context.Context, _, _ string) (distance.Result, error) {
	s.calls++
	return s.result, s.err
}

func TestEngineDriveTimeSkipsOnFailure(t *testing.T) {
	cfg := &DriveTimeConfig{
		Enabled:      true,
		YardAddress:  "100 Depot Rd",
		AddressField: "address",
		Pricing:      DriveTimePricing{Type: DriveTimePerMile, Rate: 2},
	}
	form := FormData{"address": "55 Elm St"}

	failing := &stubProvider{err: errors.New("upstream down")}
	e := &Engine{Distance: failing}
	if dt := e.driveTime(context.Background(), form, cfg); dt != nil {
		t.Fatal("expected lookup error to yield no surcharge")
	}

	noRoute := &stubProvider{result: distance.Result{Status: distance.StatusZeroResults}}
	e = &Engine{Distance: noRoute}
	if dt := e.driveTime(context.Background(), form, cfg); dt != nil {
		t.Fatal("expected non-OK status to yield no surcharge")
	}
}

func TestEngineDriveTimeSkipsWhenUnconfigured(t *testing.T) {
	provider := &stubProvider{result: distance.Result{DistanceMiles: 20, DurationMinutes: 30, Status: distance.StatusOK}}
	e := &Engine{Distance: provider}
	form := FormData{"address": "55 Elm St"}

	if dt := e.driveTime(context.Background(), form, nil); dt != nil {
		t.Fatal("expected nil config to yield no surcharge")
	}
	disabled := &DriveTimeConfig{Enabled: false, YardAddress: "100 Depot Rd", AddressField: "address"}
	if dt := e.driveTime(context.Background(), form, disabled); dt != nil {
		t.Fatal("expected disabled config to yield no surcharge")
	}
	noYard := &DriveTimeConfig{Enabled: true, AddressField: "address"}
	if dt := e.driveTime(context.Background(), form, noYard); dt != nil {
		t.Fatal("expected blank yard address to yield no surcharge")
	}
	noAddress := &DriveTimeConfig{Enabled: true, YardAddress: "100 Depot Rd", AddressField: "address"}
	if dt := e.driveTime(context.Background(), FormData{}, noAddress); dt != nil {
		t.Fatal("expected blank customer address to yield no surcharge")
	}
	if provider.calls != 0 {
		t.Fatalf("expected no lookups, got %d", provider.calls)
	}
}
