package taskpool_test

import (
	"context"
	"runtime"
	"testing"

	tp "github.com/Andrej220/go-utils/taskpool"
)

func BenchmarkSubmitWait(b *testing.B) {
	for _, qt := range queueTypes {
		b.Run(qt.String(), func(b *testing.B) {
			p := tp.New(tp.Options{Workers: runtime.GOMAXPROCS(0), QT: qt})
			defer p.Stop()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fut, err := tp.Submit(p, func(context.Context) (int, error) {
					return 1, nil
				})
				if err != nil {
					b.Fatal(err)
				}
				if _, err := fut.Wait(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSubmitThroughput(b *testing.B) {
	p := tp.New(tp.Options{Workers: runtime.GOMAXPROCS(0)})
	defer p.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := tp.Submit(p, func(context.Context) (int, error) {
			return 1, nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
	p.WaitAll()
}

func BenchmarkMap(b *testing.B) {
	p := tp.New(tp.Options{Workers: runtime.GOMAXPROCS(0)})
	defer p.Stop()

	in := make([]int, 256)
	for i := range in {
		in[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tp.Map(context.Background(), p, in, func(_ context.Context, v int) (int, error) {
			return v * v, nil
		}); err != nil {
			b.Fatal(err)
		}
	}
}
