package importer

import (
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Row is one flat record from the imported spreadsheet. DateRaw is kept
// verbatim; ResolveDate interprets it later with a context fallback.
type Row struct {
	Description     string
	Frequency       string
	Standard        string
	Risk            string
	DateRaw         string
	TRHours         float64
	TMHours         float64
	OperationalDays int
	DailyHours      float64 // 0 means not provided
}

var (
	isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// Days between 1900-system serial 0 and the unix epoch.
const serialEpochOffset = 25569

// Parse reads the first sheet of an xlsx workbook into rows. Completely
// empty rows are dropped; rows without an Actividad value are kept so the
// caller can count them as skipped.
func Parse(r io.Reader) ([]Row, error) {
	x, err := excelize.OpenReader(r)
	if err != nil { return nil, err }
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	raw, err := x.GetRows(sheets[0])
	if err != nil { return nil, err }
	if len(raw) == 0 {
		return nil, nil
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "í", "i")
		return s
	}
	hmap := map[string]int{}
	for i, h := range raw[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok { return idx }
		}
		return -1
	}

	cAct := findAny("Actividad", "actividad", "tarea")
	cFreq := findAny("Frecuencia", "frecuencia")
	cNorm := findAny("Norma", "norma", "estandar")
	cRisk := findAny("Riesgo", "riesgo")
	cDate := findAny("Fecha", "fecha")
	cTR := findAny("TR", "tr")
	cTM := findAny("TM", "tm")
	cDias := findAny("Dias", "Días", "dias")
	cHoras := findAny("Horas", "horas")

	var rows []Row
	for _, rec := range raw[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) { return "" }
			return strings.TrimSpace(rec[idx])
		}
		empty := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" { empty = false; break }
		}
		if empty { continue }

		tr, _ := strconv.ParseFloat(get(cTR), 64)
		tm, _ := strconv.ParseFloat(get(cTM), 64)
		dias, _ := strconv.Atoi(get(cDias))
		horas, _ := strconv.ParseFloat(get(cHoras), 64)

		freq := strings.ToUpper(get(cFreq))
		if freq == "" { freq = "DIARIA" }
		risk := strings.ToUpper(get(cRisk))
		if risk == "" { risk = "BAJO" }

		rows = append(rows, Row{
			Description:     get(cAct),
			Frequency:       freq,
			Standard:        get(cNorm),
			Risk:            risk,
			DateRaw:         get(cDate),
			TRHours:         tr,
			TMHours:         tm,
			OperationalDays: dias,
			DailyHours:      horas,
		})
	}
	return rows, nil
}

// ResolveDate interprets a raw Fecha cell as ISO YYYY-MM-DD, DD/MM/YYYY, or
// a spreadsheet serial day number. Anything else falls back to the first of
// the target month, so a parse failure never drops the row.
func ResolveDate(raw string, targetYear int, targetMonth time.Month) time.Time {
	raw = strings.TrimSpace(raw)
	fallback := time.Date(targetYear, targetMonth, 1, 0, 0, 0, 0, time.UTC)
	if raw == "" {
		return fallback
	}
	switch {
	case isoRe.MatchString(raw):
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			return d
		}
	case dmyRe.MatchString(raw):
		if d, err := time.Parse("2/1/2006", raw); err == nil {
			return d
		}
	default:
		if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
			// noon offset keeps the date stable across timezones
			secs := int64(math.Round((serial-float64(serialEpochOffset))*86400)) + 43200
			d := time.Unix(secs, 0).UTC()
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return fallback
}
