package library

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func generateDescriptor(count int) string {
	entries := make([]string, count)
	for i := range entries {
		entries[i] = fmt.Sprintf(
			`{"name":"lib-%d","author":["Dev %d"],"version":"1.0.%d","licenses":["Apache-2.0"],`+
				`"website":"https://example.com/%d"}`, i, i, i, i)
	}
	return "[" + strings.Join(entries, ",") + "]"
}

func BenchmarkLoad_Typical(b *testing.B) {
	b.ReportAllocs()
	data := generateDescriptor(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoad_Large(b *testing.B) {
	b.ReportAllocs()
	data := generateDescriptor(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoader_Concurrent(b *testing.B) {
	b.ReportAllocs()
	data := generateDescriptor(1000)
	ld := NewLoader()
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := ld.Load(ctx, data); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkKey(b *testing.B) {
	data := generateDescriptor(1000)
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Key(data)
	}
}
