// Package partial builds column updates from request bodies where only the
// fields present in the body are written. Every applied patch also stamps
// updated_at.
package partial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmpty    = errors.New("partial: no fields to update")
	ErrNotFound = errors.New("partial: record not found")
)

// Patch is an ordered set of column assignments.
type Patch struct {
	cols []string
	vals map[string]any
}

func New() *Patch {
	return &Patch{vals: map[string]any{}}
}

// Set assigns col unconditionally. Assigning the same column twice keeps the
// first position and the last value.
func (p *Patch) Set(col string, v any) *Patch {
	if _, ok := p.vals[col]; !ok {
		p.cols = append(p.cols, col)
	}
	p.vals[col] = v
	return p
}

// Field assigns col only when v is non-nil.
func Field[T any](p *Patch, col string, v *T) {
	if v != nil {
		p.Set(col, *v)
	}
}

// Trimmed is Field for strings with surrounding whitespace removed.
func Trimmed(p *Patch, col string, v *string) {
	if v != nil {
		p.Set(col, strings.TrimSpace(*v))
	}
}

// JSONList stores a string list as a JSON array column. A nil slice inside a
// non-nil pointer is written as an empty array.
func JSONList(p *Patch, col string, v *[]string) {
	if v == nil {
		return
	}
	list := *v
	if list == nil {
		list = []string{}
	}
	p.Set(col, datatypes.NewJSONSlice(list))
}

// JSONObject stores a map as a JSON object column.
func JSONObject(p *Patch, col string, v *map[string]any) {
	if v == nil {
		return
	}
	obj := *v
	if obj == nil {
		obj = map[string]any{}
	}
	p.Set(col, datatypes.JSONMap(obj))
}

func (p *Patch) Empty() bool {
	return len(p.cols) == 0
}

func (p *Patch) Has(col string) bool {
	_, ok := p.vals[col]
	return ok
}

func (p *Patch) Get(col string) (any, bool) {
	v, ok := p.vals[col]
	return v, ok
}

// Columns returns the assigned columns in assignment order.
func (p *Patch) Columns() []string {
	out := make([]string, len(p.cols))
	copy(out, p.cols)
	return out
}

// Values returns the assignments plus updated_at = now.
func (p *Patch) Values(now time.Time) map[string]any {
	out := make(map[string]any, len(p.vals)+1)
	for k, v := range p.vals {
		out[k] = v
	}
	out["updated_at"] = now
	return out
}

// Apply writes the patch to the row of model's table identified by id.
// model is only used to resolve the table, e.g. &models.Service{}.
func (p *Patch) Apply(ctx context.Context, db *gorm.DB, model any, id uint) error {
	if p.Empty() {
		return ErrEmpty
	}

	res := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Updates(p.Values(time.Now().UTC()))
	if res.Error != nil {
		return fmt.Errorf("partial: update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
