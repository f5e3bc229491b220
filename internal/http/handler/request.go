package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"labelprint/internal/label"
	"labelprint/internal/service"
)

// faultRequest mirrors one fault entry in the order payload.
type faultRequest struct {
	Name  string   `json:"fault_name"`
	Plans []string `json:"fault_plan"`
}

// orderRequest is the JSON body accepted by the order label endpoint. Logo is
// accepted for compatibility with older clients and ignored; the printed
// label carries a QR code instead.
type orderRequest struct {
	Time    string         `json:"time"`
	User    string         `json:"user"`
	Device  string         `json:"device"`
	Faults  []faultRequest `json:"fault_data"`
	Notices []string       `json:"notice"`
	Extras  []string       `json:"extra"`
	QRURL   string         `json:"qr_url"`
	Logo    string         `json:"logo"`
	Density int            `json:"density"`
	Speed   int            `json:"speed"`
	Copies  int            `json:"copies"`
}

func (r orderRequest) toOrder() label.Order {
	faults := make([]label.Fault, 0, len(r.Faults))
	for _, f := range r.Faults {
		faults = append(faults, label.Fault{Name: f.Name, Plans: f.Plans})
	}
	return label.Order{
		Time:      r.Time,
		User:      r.User,
		Device:    r.Device,
		Faults:    faults,
		Notices:   r.Notices,
		Extras:    r.Extras,
		QRPayload: r.QRURL,
	}
}

func (r orderRequest) options() service.PrintOptions {
	return service.PrintOptions{Density: r.Density, Speed: r.Speed, Copies: r.Copies}
}

// optionsFromForm reads printhead overrides from multipart form fields.
// Malformed values are ignored so a bad override never blocks a print.
func optionsFromForm(c *fiber.Ctx) service.PrintOptions {
	var opts service.PrintOptions
	if v, err := strconv.Atoi(c.FormValue("density")); err == nil {
		opts.Density = v
	}
	if v, err := strconv.Atoi(c.FormValue("speed")); err == nil {
		opts.Speed = v
	}
	if v, err := strconv.Atoi(c.FormValue("copies")); err == nil {
		opts.Copies = v
	}
	return opts
}
