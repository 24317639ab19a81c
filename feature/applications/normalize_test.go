package applications

import (
	"testing"

	"application-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "3/5/2024", want: "2024-03-05"},
		{raw: "12/25/2023", want: "2023-12-25"},
		{raw: "03/05/2024", want: "2024-03-05"},
		{raw: " 1/1/2024 ", want: "2024-01-01"},
		{raw: "", want: ""},
		{raw: "13/45/2024", wantErr: true},
		{raw: "2/30/2024", wantErr: true},
		{raw: "2024-03-05", wantErr: true},
		{raw: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, reconcile.ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLocations(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "NYC, USA|Remote", want: []string{"NYC USA", "Remote"}},
		{raw: "|Remote|", want: []string{"Remote"}},
		{raw: "", want: []string{}},
		{raw: " , | ", want: []string{}},
		{raw: "Berlin, Germany", want: []string{"Berlin Germany"}},
		{raw: "B|A|C", want: []string{"B", "A", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocations(tt.raw))
		})
	}
}

func TestParse(t *testing.T) {
	row := map[string]string{
		FieldCompany:     " Acme ",
		FieldRole:        "Engineer",
		FieldSalary:      "120000",
		FieldLocations:   "NYC, USA|Remote",
		FieldStatus:      "applied",
		FieldDateSaved:   "1/2/2024",
		FieldDateApplied: "1/9/2024",
	}

	app, err := Parse(row)
	require.NoError(t, err)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Engineer", app.Role)
	assert.Equal(t, "120000", app.Salary)
	assert.Equal(t, []string{"NYC USA", "Remote"}, app.Locations)
	assert.Equal(t, "2024-01-02", app.DateSaved)
	assert.Equal(t, "2024-01-09", app.DateApplied)
	assert.Equal(t, "Acme / Engineer", app.Key())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]string
		err  error
	}{
		{
			name: "Missing company",
			row:  map[string]string{FieldRole: "Engineer", FieldStatus: "applied"},
			err:  reconcile.ErrInvalidRecord,
		},
		{
			name: "Missing role",
			row:  map[string]string{FieldCompany: "Acme", FieldStatus: "applied"},
			err:  reconcile.ErrInvalidRecord,
		},
		{
			name: "Bad applied date",
			row:  map[string]string{FieldCompany: "Acme", FieldRole: "Engineer", FieldDateApplied: "13/45/2024"},
			err:  reconcile.ErrMalformedDate,
		},
		{
			name: "Bad saved date",
			row:  map[string]string{FieldCompany: "Acme", FieldRole: "Engineer", FieldDateSaved: "soon"},
			err:  reconcile.ErrMalformedDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.row)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
