package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

// ImportReport resume una carga de catálogo desde XLSX.
type ImportReport struct {
	Created   int       `json:"created"`
	Updated   int       `json:"updated"`
	Skipped   int       `json:"skipped"`
	Errors    []string  `json:"errors"`
	Sheets    []string  `json:"sheets"`
	Timestamp time.Time `json:"timestamp"`
}

type ImportUC struct {
	Components domain.ComponentRepo
}

// columnas fijas; cualquier otra columna del encabezado pasa a specs
var knownColumns = map[string]struct{}{
	"id": {}, "name": {}, "brand": {}, "price": {}, "discount": {},
	"image": {}, "rating": {}, "reviews": {}, "stock": {},
}

// ImportXLSX carga un libro con una hoja por categoría (el nombre de la hoja
// es el slot o la categoría del catálogo) y la primera fila como encabezado.
// Las filas inválidas se informan y no cortan la carga.
func (uc *ImportUC) ImportXLSX(ctx context.Context, r io.Reader) (*ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx inválido: %w", err)
	}
	defer f.Close()

	rep := &ImportReport{Errors: []string{}, Sheets: []string{}, Timestamp: time.Now()}
	for _, sh := range f.GetSheetList() {
		slot, err := domain.ParseSlot(sh)
		if err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("hoja %q: %v", sh, err))
			continue
		}
		rows, err := f.GetRows(sh)
		if err != nil || len(rows) < 2 {
			continue
		}
		rep.Sheets = append(rep.Sheets, sh)
		header := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			header[i] = strings.TrimSpace(h)
		}
		for i, row := range rows[1:] {
			if blankRow(row) {
				continue
			}
			c, err := componentFromRow(slot, header, row)
			if err == nil {
				err = c.Validate()
			}
			if err != nil {
				rep.Skipped++
				rep.Errors = append(rep.Errors, fmt.Sprintf("%s fila %d: %v", sh, i+2, err))
				continue
			}
			_, ferr := uc.Components.FindByID(ctx, c.ID)
			if ferr != nil && !errors.Is(ferr, domain.ErrNotFound) {
				return rep, ferr
			}
			if err := uc.Components.Save(ctx, c); err != nil {
				return rep, err
			}
			if ferr != nil {
				rep.Created++
			} else {
				rep.Updated++
			}
		}
	}
	log.Info().Int("creados", rep.Created).Int("actualizados", rep.Updated).Int("omitidos", rep.Skipped).Msg("import xlsx")
	return rep, nil
}

func componentFromRow(slot domain.Slot, header, row []string) (*domain.Component, error) {
	c := &domain.Component{Category: slot, Specs: map[string]string{}}
	for i, col := range header {
		if col == "" || i >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[i])
		key := strings.ToLower(col)
		if _, known := knownColumns[key]; !known {
			if v != "" {
				c.Specs[col] = v
			}
			continue
		}
		var err error
		switch key {
		case "id":
			c.ID = v
		case "name":
			c.Name = v
		case "brand":
			c.Brand = v
		case "image":
			c.Image = v
		case "price":
			c.Price, err = parseAmount(v)
		case "discount":
			c.Discount, err = parseAmount(v)
		case "rating":
			if v != "" {
				c.Rating, err = strconv.ParseFloat(v, 64)
			}
		case "reviews":
			c.Reviews, err = parseCount(v)
		case "stock":
			c.Stock, err = parseCount(v)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col, err)
		}
	}
	if c.ID == "" && c.Name != "" {
		c.ID = string(slot) + "-" + slugify(c.Name)
	}
	if c.Name == "" {
		return nil, errors.New("nombre vacío")
	}
	return c, nil
}

func parseAmount(v string) (decimal.Decimal, error) {
	v = strings.NewReplacer("$", "", ",", "", " ", "").Replace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v)
}

func parseCount(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
