package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bethyw/internal/domain"
)

func TestAreas_SetArea_MergesSameCode(t *testing.T) {
	as := domain.NewAreas()

	first := domain.NewArea("W06000023")
	first.SetName("eng", "Powys")
	first.SetName("cym", "Powys")
	as.SetArea(first)

	second := domain.NewArea("W06000023")
	second.SetName("eng", "Powys County")
	as.SetArea(second)

	assert.Equal(t, 1, as.Size(), "same code merges, never duplicates")

	got, err := as.GetArea("W06000023")
	require.NoError(t, err)
	eng, err := got.Name("eng")
	require.NoError(t, err)
	assert.Equal(t, "Powys County", eng, "incoming name wins")
	cym, err := got.Name("cym")
	require.NoError(t, err)
	assert.Equal(t, "Powys", cym, "untouched languages survive")
}

func TestAreas_GetArea_NotFound(t *testing.T) {
	as := domain.NewAreas()

	_, err := as.GetArea("W06000099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "W06000099")
}

func TestAreas_ToJSON_Empty(t *testing.T) {
	as := domain.NewAreas()

	out, err := as.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestAreas_ToJSON_Shape(t *testing.T) {
	as := domain.NewAreas()
	a := domain.NewArea("W06000001")
	a.SetName("eng", "Isle of Anglesey")
	a.SetName("cym", "Ynys Môn")
	m := domain.NewMeasure("pop", "Population")
	m.SetValue(1991, 69123)
	m.SetValue(1992, 69379)
	a.SetMeasure("pop", m)
	as.SetArea(a)

	out, err := as.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"W06000001": {
			"names": {"eng": "Isle of Anglesey", "cym": "Ynys Môn"},
			"measures": {"pop": {"1991": 69123, "1992": 69379}}
		}
	}`, out)
}

func TestAreas_ToJSON_RoundTripReadings(t *testing.T) {
	as := domain.NewAreas()
	a := domain.NewArea("W06000001")
	a.SetName("eng", "Isle of Anglesey")
	readings := map[string]float64{"1991": 69123.25, "1992": 69379.5, "2000": 71000}
	m := domain.NewMeasure("pop", "Population")
	m.SetValue(1991, 69123.25)
	m.SetValue(1992, 69379.5)
	m.SetValue(2000, 71000)
	a.SetMeasure("pop", m)
	as.SetArea(a)

	out, err := as.ToJSON()
	require.NoError(t, err)

	var parsed map[string]struct {
		Measures map[string]map[string]float64 `json:"measures"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, readings, parsed["W06000001"].Measures["pop"])
}

func TestAreas_String_AscendingByCode(t *testing.T) {
	as := domain.NewAreas()

	two := domain.NewArea("W06000002")
	two.SetName("eng", "Gwynedd")
	as.SetArea(two)

	one := domain.NewArea("W06000001")
	one.SetName("eng", "Isle of Anglesey")
	as.SetArea(one)

	want := "Isle of Anglesey (W06000001)\n" +
		"\n" +
		"Gwynedd (W06000002)\n"
	assert.Equal(t, want, as.String())
}

func TestAreas_String_Empty(t *testing.T) {
	assert.Equal(t, "", domain.NewAreas().String())
}
