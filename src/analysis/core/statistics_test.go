package core

import (
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   int64
	}{
		{"Empty", nil, 0},
		{"Single", []int64{42}, 42},
		{"Several", []int64{0, 50, 0, 30}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.values); got != tt.want {
				t.Errorf("Sum(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestSumInWindow(t *testing.T) {
	timestamps := []int64{100, 200, 300, 400, 500}
	values := []int64{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		from int64
		to   int64
		want int64
	}{
		{"FullRange", 100, 500, 15},
		{"BothBoundsInclusive", 200, 400, 9},
		{"FromBeforeData", 0, 250, 3},
		{"ToAfterData", 450, 900, 5},
		{"EmptyWindow", 201, 299, 0},
		{"SinglePoint", 300, 300, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumInWindow(timestamps, values, tt.from, tt.to); got != tt.want {
				t.Errorf("SumInWindow(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCalculateMeanStd(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		wantMean float64
		wantStd  float64
	}{
		{"Empty", nil, 0, 0},
		{"Single", []float64{7}, 7, 0},
		{"Uniform", []float64{3, 3, 3}, 3, 0},
		{"Spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := CalculateMeanStd(tt.data)
			if math.Abs(mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 1e-9 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}

func TestSafeRate(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		span  float64
		want  float64
	}{
		{"Normal", 120, 2, 60},
		{"ZeroSpan", 120, 0, 0},
		{"NegativeSpan", 120, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRate(tt.total, tt.span); got != tt.want {
				t.Errorf("SafeRate(%v, %v) = %v, want %v", tt.total, tt.span, got, tt.want)
			}
		})
	}
}

func TestSuccessRatio(t *testing.T) {
	tests := []struct {
		name      string
		successes float64
		total     float64
		want      float64
	}{
		{"Normal", 99, 100, 0.99},
		{"ZeroTotal", 0, 0, 0},
		{"AllSuccess", 50, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRatio(tt.successes, tt.total); got != tt.want {
				t.Errorf("SuccessRatio(%v, %v) = %v, want %v", tt.successes, tt.total, got, tt.want)
			}
		})
	}
}
