package analyzer_test

import (
	"reflect"
	"testing"

	"type-analyzer/analyzer"
	"type-analyzer/options"
	"type-analyzer/provider"
)

func BenchmarkAnalyzer_Cached(b *testing.B) {
	a, _ := newAnalyzer(b)
	if _, err := a.Analyze(sampleType); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		r, err := a.Analyze(sampleType)
		if err != nil {
			b.Fatal(err)
		}
		_, _ = r.Constructors()
		_, _ = r.Methods()
		_, _ = r.Properties()
		_, _ = r.Fields()
	}
}

func BenchmarkAnalyzer_CachedParallel(b *testing.B) {
	a, _ := newAnalyzer(b)
	if _, err := a.Analyze(sampleType); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := a.Analyze(sampleType, options.CategoryMethods); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkAnalyzer_Cold(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		a := analyzer.New()
		if _, err := a.Analyze(sampleType); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDirectReflection walks the type on every iteration, the baseline
// the cached benchmarks are compared against.
func BenchmarkDirectReflection(b *testing.B) {
	p := provider.New()
	if err := p.RegisterConstructor(NewSampleClass); err != nil {
		b.Fatal(err)
	}
	typ := reflect.TypeFor[SampleClass]()

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if _, err := p.Constructors(typ); err != nil {
			b.Fatal(err)
		}
		if _, err := p.Methods(typ); err != nil {
			b.Fatal(err)
		}
		if _, err := p.Properties(typ); err != nil {
			b.Fatal(err)
		}
		if _, err := p.Fields(typ); err != nil {
			b.Fatal(err)
		}
	}
}
