package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const (
	couponFile = "coupon.json"
	singleFile = "single.json"
)

// Load reads the coupon dataset and the single-item price table from dir.
// The by-code map is rebuilt from the coupon list so that both views share
// the same Coupon values; the dataset is otherwise treated as immutable.
func Load(dir string) (*Dataset, PriceTable, error) {
	var ds Dataset
	if err := decodeFile(filepath.Join(dir, couponFile), &ds); err != nil {
		return nil, nil, fmt.Errorf("loading coupons: %w", err)
	}
	if len(ds.Coupons) == 0 {
		return nil, nil, fmt.Errorf("loading coupons: %s has no coupons", couponFile)
	}

	ds.CouponsByCode = make(map[string]*Coupon, len(ds.Coupons))
	for _, c := range ds.Coupons {
		ds.CouponsByCode[strconv.Itoa(c.CouponCode)] = c
	}
	ds.Count = len(ds.Coupons)

	var singles map[string]SingleItemEntry
	if err := decodeFile(filepath.Join(dir, singleFile), &singles); err != nil {
		return nil, nil, fmt.Errorf("loading single-item prices: %w", err)
	}

	table := make(PriceTable, len(singles))
	for name, entry := range singles {
		table[name] = entry.Price
	}
	return &ds, table, nil
}

// ByCode looks up a coupon by its numeric code.
func (d *Dataset) ByCode(code int) (*Coupon, bool) {
	c, ok := d.CouponsByCode[strconv.Itoa(code)]
	return c, ok
}

func decodeFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s: trailing JSON content", filepath.Base(path))
	}
	return nil
}
