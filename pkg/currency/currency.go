// Package currency renders settlement amounts as localized currency
// strings. Amounts are kept as plain floats everywhere else in the
// system; rounding and digit grouping happen only here, at display
// time. An unknown currency code falls back to a plain integer string.
package currency

import (
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the fallback currency code.
const DefaultCurrency = "VND"

// Meta holds the formatting metadata of one currency.
type Meta struct {
	Code     string
	Symbol   string
	Decimals int
	// Grouping separates thousands; Point separates decimals.
	Grouping string
	Point    string
	// SymbolFirst prints the symbol before the amount instead of after.
	SymbolFirst bool
}

// Registry is a thread-safe registry of currency formatting metadata.
type Registry struct {
	mu         sync.RWMutex
	currencies map[string]Meta
}

// NewRegistry creates a registry preloaded with the currencies the
// trading operation settles in.
func NewRegistry() *Registry {
	r := &Registry{currencies: make(map[string]Meta)}
	for _, meta := range []Meta{
		{Code: "VND", Symbol: "₫", Decimals: 0, Grouping: ".", Point: ","},
		{Code: "USD", Symbol: "$", Decimals: 2, Grouping: ",", Point: ".", SymbolFirst: true},
		{Code: "EUR", Symbol: "€", Decimals: 2, Grouping: ".", Point: ","},
		{Code: "JPY", Symbol: "¥", Decimals: 0, Grouping: ",", Point: ".", SymbolFirst: true},
		{Code: "THB", Symbol: "฿", Decimals: 2, Grouping: ",", Point: ".", SymbolFirst: true},
	} {
		r.Register(meta)
	}
	return r
}

// Register adds or updates a currency.
func (r *Registry) Register(meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[meta.Code] = meta
}

// Get returns the metadata for a code.
func (r *Registry) Get(code string) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.currencies[code]
	return meta, ok
}

// IsSupported checks whether a code is registered.
func (r *Registry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.currencies[code]
	return ok
}

// ListSupported returns all registered codes.
func (r *Registry) ListSupported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.currencies))
	for code := range r.currencies {
		codes = append(codes, code)
	}
	return codes
}

// Format renders an amount in the given currency. Unknown codes fall
// back to the truncated integer value as a plain string.
func (r *Registry) Format(amount float64, code string) string {
	meta, ok := r.Get(code)
	if !ok {
		return strconv.FormatInt(int64(amount), 10)
	}

	d := decimal.NewFromFloat(amount).Round(int32(meta.Decimals))
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	digits := d.StringFixed(int32(meta.Decimals))
	whole, frac, _ := strings.Cut(digits, ".")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	if meta.SymbolFirst {
		sb.WriteString(meta.Symbol)
	}
	sb.WriteString(group(whole, meta.Grouping))
	if frac != "" {
		sb.WriteString(meta.Point)
		sb.WriteString(frac)
	}
	if !meta.SymbolFirst {
		sb.WriteByte(' ')
		sb.WriteString(meta.Symbol)
	}
	return sb.String()
}

// FormatCode renders like Format but with the ISO code after the
// amount instead of the symbol. Some output targets (PDF core fonts)
// only cover Latin-1 and cannot print symbols like the dong sign.
func (r *Registry) FormatCode(amount float64, code string) string {
	meta, ok := r.Get(code)
	if !ok {
		return strconv.FormatInt(int64(amount), 10)
	}

	d := decimal.NewFromFloat(amount).Round(int32(meta.Decimals))
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	digits := d.StringFixed(int32(meta.Decimals))
	whole, frac, _ := strings.Cut(digits, ".")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(group(whole, meta.Grouping))
	if frac != "" {
		sb.WriteString(meta.Point)
		sb.WriteString(frac)
	}
	sb.WriteByte(' ')
	sb.WriteString(meta.Code)
	return sb.String()
}

// group inserts the thousands separator into an unsigned digit string.
func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// Global registry instance for convenience.
var globalRegistry = NewRegistry()

// Format renders an amount using the global registry.
func Format(amount float64, code string) string {
	return globalRegistry.Format(amount, code)
}

// FormatCode renders an amount with the ISO code using the global
// registry.
func FormatCode(amount float64, code string) string {
	return globalRegistry.FormatCode(amount, code)
}

// IsSupported checks a code against the global registry.
func IsSupported(code string) bool {
	return globalRegistry.IsSupported(code)
}
