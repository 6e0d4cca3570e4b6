package menu

// NoDiscount is the discount value of a coupon whose real discount is not
// known: either an item failed price resolution, or the bundle is not actually
// cheaper than its parts. On the Taiwanese 折 scale 10 means "full price".
const NoDiscount = 10.0

// Flavor is one substitution choice for a coupon item.
type Flavor struct {
	Name          string `json:"name"`
	AdditionPrice int    `json:"addition_price"`
}

// Item is one purchasable line inside a coupon. Name may be a "+"-joined
// compound of several sub-item names, each possibly carrying embedded size,
// spice, or count qualifiers.
type Item struct {
	Name          string   `json:"name"`
	Count         int      `json:"count"`
	AdditionPrice int      `json:"addition_price"`
	Flavors       []Flavor `json:"flavors"`
}

// Coupon is a purchasable bundle from the coupon dataset.
//
// OriginalPrice and Discount are not part of the source data; they are derived
// once at startup by pricing.Annotator and read-only afterwards.
type Coupon struct {
	Name        string `json:"name"`
	ProductCode string `json:"product_code"`
	CouponCode  int    `json:"coupon_code"`
	Price       int    `json:"price"`
	Items       []Item `json:"items"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	OriginalPrice int     `json:"original_price,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
}

// HasDiscount reports whether a real discount was computed for the coupon.
func (c Coupon) HasDiscount() bool {
	return c.Discount != NoDiscount && c.Discount != 0
}

// Dataset is the decoded coupon.json blob.
type Dataset struct {
	CouponsByCode map[string]*Coupon `json:"coupon_by_code"`
	Coupons       []*Coupon          `json:"coupon_list"`
	Count         int                `json:"count"`
	LastUpdate    string             `json:"last_update"`
}

// SingleItemEntry is one row of the single-item reference menu (single.json):
// a standalone product and its non-discounted price.
type SingleItemEntry struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Nutrition string `json:"nutrition"`
}

// PriceTable maps a canonical single-item name to its standalone price.
type PriceTable map[string]int
