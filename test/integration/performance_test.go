package integration

import (
	"runtime"
	"testing"
	"time"

	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"github.com/iwvelando/rental-forecast/pkg/projection"
	"github.com/iwvelando/rental-forecast/pkg/testutil"
	"go.uber.org/zap"
)

func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}

	conf := loadExample(t)
	conf.ShortTermRental.Enabled = true
	conf.ShortTermRental.MonthsPerYear = 3

	const iterations = 100
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := forecast.GetForecast(zap.NewNop(), *conf); err != nil {
			t.Fatalf("GetForecast() error = %v", err)
		}
	}
	avg := time.Since(start) / iterations

	t.Logf("average forecast time: %v", avg)
	if avg > 100*time.Millisecond {
		t.Errorf("forecast took %v on average, expected under 100ms", avg)
	}
}

func TestLongSchedulePerformance(t *testing.T) {
	in := testutil.ReferenceInputs()
	in.Years = 50
	in.PeriodsPerYear = 52
	in.ShortTermRental = projection.ShortTermRental{Enabled: true, MonthsPerYear: 13, NightlyPrice: 3000, Occupancy: 0.75}

	start := time.Now()
	result, err := projection.NewEngine(zap.NewNop()).Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	elapsed := time.Since(start)

	if len(result.Monthly) != 2600 || len(result.Yearly) != 50 {
		t.Fatalf("expected 2600 periods and 50 years, got %d and %d", len(result.Monthly), len(result.Yearly))
	}
	if result.Amortization[len(result.Amortization)-1].RemainingPrincipal != 0 {
		t.Error("expected the loan to be fully repaid")
	}
	if elapsed > time.Second {
		t.Errorf("long projection took %v, expected under 1s", elapsed)
	}
}

func TestMemoryUsage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory test in short mode")
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	for i := 0; i < 50; i++ {
		if _, err := projection.Project(testutil.ShortTermInputs()); err != nil {
			t.Fatalf("Project() error = %v", err)
		}
	}

	runtime.GC()
	runtime.ReadMemStats(&after)

	var retained uint64
	if after.HeapAlloc > before.HeapAlloc {
		retained = after.HeapAlloc - before.HeapAlloc
	}
	t.Logf("heap retained after 50 projections: %d bytes", retained)
	if retained > 10*1024*1024 {
		t.Errorf("retained %d bytes of heap, expected projections to be garbage collected", retained)
	}
}

func BenchmarkProject(b *testing.B) {
	in := testutil.ReferenceInputs()
	engine := projection.NewEngine(nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Project(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateSchedule(b *testing.B) {
	generator := loans.NewAmortizationScheduleGenerator(nil)
	loan := loans.LoanConfig{Principal: 4000000, InterestRate: 0.06, Years: 25, PeriodsPerYear: 12, Type: loans.Annuity}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := generator.GenerateSchedule(loan); err != nil {
			b.Fatal(err)
		}
	}
}
