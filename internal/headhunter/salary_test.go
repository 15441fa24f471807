package headhunter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		vacancy Vacancy
		want    float64
		wantOK  bool
	}{
		{
			name:    "no salary",
			vacancy: Vacancy{},
		},
		{
			name:    "foreign currency",
			vacancy: Vacancy{Salary: &Salary{From: ptr(1000.0), To: ptr(2000.0), Currency: "USD"}},
		},
		{
			name:    "both bounds null",
			vacancy: Vacancy{Salary: &Salary{Currency: "RUR"}},
		},
		{
			name:    "both bounds zero",
			vacancy: Vacancy{Salary: &Salary{From: ptr(0.0), To: ptr(0.0), Currency: "RUR", Gross: ptr(true)}},
		},
		{
			name:    "full fork net",
			vacancy: Vacancy{Salary: &Salary{From: ptr(100000.0), To: ptr(200000.0), Currency: "RUR", Gross: ptr(false)}},
			want:    150000,
			wantOK:  true,
		},
		{
			name:    "full fork gross",
			vacancy: Vacancy{Salary: &Salary{From: ptr(100000.0), To: ptr(200000.0), Currency: "RUR", Gross: ptr(true)}},
			want:    130500,
			wantOK:  true,
		},
		{
			name:    "upper only",
			vacancy: Vacancy{Salary: &Salary{To: ptr(100000.0), Currency: "RUR"}},
			want:    80000,
			wantOK:  true,
		},
		{
			name:    "lower only",
			vacancy: Vacancy{Salary: &Salary{From: ptr(100000.0), To: ptr(0.0), Currency: "RUR"}},
			want:    120000,
			wantOK:  true,
		},
		{
			name:    "lower only gross",
			vacancy: Vacancy{Salary: &Salary{From: ptr(100000.0), Currency: "RUR", Gross: ptr(true)}},
			want:    104400,
			wantOK:  true,
		},
		{
			name:    "null gross is net",
			vacancy: Vacancy{Salary: &Salary{From: ptr(50000.0), To: ptr(70000.0), Currency: "RUR"}},
			want:    60000,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Estimate(tt.vacancy)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestGrossIsScaledNet(t *testing.T) {
	forks := [][2]*float64{
		{ptr(100000.0), ptr(200000.0)},
		{nil, ptr(90000.0)},
		{ptr(45000.0), nil},
	}

	for _, f := range forks {
		net, okNet := Estimate(Vacancy{Salary: &Salary{From: f[0], To: f[1], Currency: "RUR", Gross: ptr(false)}})
		gross, okGross := Estimate(Vacancy{Salary: &Salary{From: f[0], To: f[1], Currency: "RUR", Gross: ptr(true)}})

		assert.True(t, okNet)
		assert.True(t, okGross)
		assert.InDelta(t, 0.87*net, gross, 1e-6)
	}
}
