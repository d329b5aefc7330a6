package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                        "/",
		"/metrics":                "/metrics",
		"/products":               "/products",
		"/product/17":             "/product/:id",
		"/customer/42":            "/customer/:id",
		"/customer/cart":          "/customer/cart",
		"/seller/9":               "/seller/:id",
		"/seller/orders":          "/seller/orders",
		"/customer/orders?id=3":   "/customer/orders",
		"/reports/vendor-sales":   "/reports/vendor-sales",
		"/product/17/extra":       "/product/17/extra",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
