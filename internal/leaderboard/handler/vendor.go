package handler

// Vendor is a price bucket: hardware of the same vendor rents at one
// $/GPU-hour rate for ROI scoring.
type Vendor string

const (
	VendorNvidia Vendor = "nvidia"
	VendorHuawei Vendor = "huawei"
	VendorAMD    Vendor = "amd"
)

// hardwareVendors maps a hardware identifier to its price bucket.
var hardwareVendors = map[string]Vendor{
	"H20":         VendorNvidia,
	"H800":        VendorNvidia,
	"HGX-H100":    VendorNvidia,
	"HGX-H200":    VendorNvidia,
	"DGX-B100":    VendorNvidia,
	"DGX-B200":    VendorNvidia,
	"DGX-B300":    VendorNvidia,
	"GB200-NVL72": VendorNvidia,
	"GB300-NV72":  VendorNvidia,
	"Rubin-NV144": VendorNvidia,
	"Rubin-NV576": VendorNvidia,

	"910B":  VendorHuawei,
	"910C":  VendorHuawei,
	"950PR": VendorHuawei,
	"960":   VendorHuawei,
	"970":   VendorHuawei,

	"MI300X": VendorAMD,
	"MI350X": VendorAMD,
	"MI355":  VendorAMD,
	"MI400":  VendorAMD,
}

// PriceBook holds the hourly rental rate per vendor bucket.
type PriceBook map[Vendor]float64

// HourlyPrice resolves the rate for a hardware identifier, falling back to
// defaultPrice for unknown hardware or unpriced vendors.
func (p PriceBook) HourlyPrice(hardware string, defaultPrice float64) float64 {
	vendor, ok := hardwareVendors[hardware]
	if !ok {
		return defaultPrice
	}
	price, ok := p[vendor]
	if !ok || price <= 0 {
		return defaultPrice
	}
	return price
}
