package transport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ImageRef accepts either a plain path string or the uploaded-file
// descriptor the admin UI submits: {"rawFile": {"path": "..."}}.
type ImageRef struct {
	Path     string
	Uploaded bool
}

func (r *ImageRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.Path = s
		r.Uploaded = false
		return nil
	}

	var obj struct {
		RawFile struct {
			Path string `json:"path"`
		} `json:"rawFile"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("image must be a path or an upload descriptor: %w", err)
	}
	r.Path = obj.RawFile.Path
	r.Uploaded = true
	return nil
}

func (r ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Href())
}

// Href is the stored form of the reference. Upload descriptors normalize
// to a path under /uploads/.
func (r ImageRef) Href() string {
	if r.Uploaded {
		return "/uploads/" + strings.TrimPrefix(r.Path, "/")
	}
	return r.Path
}

// ImagePaths is the pure normalization transform applied before an image
// array reaches the repository.
func ImagePaths(refs []ImageRef) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Href())
	}
	return out
}

// IDList accepts id arrays whose elements are numbers or numeric strings,
// which is how HTML forms tend to deliver them.
type IDList []uint

func (l *IDList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	ids := make([]uint, 0, len(raw))
	for _, el := range raw {
		var n uint
		if err := json.Unmarshal(el, &n); err == nil {
			ids = append(ids, n)
			continue
		}
		var s string
		if err := json.Unmarshal(el, &s); err != nil {
			return fmt.Errorf("id must be a number or numeric string")
		}
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return fmt.Errorf("id %q is not numeric", s)
		}
		ids = append(ids, uint(v))
	}
	*l = ids
	return nil
}

func (l IDList) Uints() []uint {
	return []uint(l)
}

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("value must be a number or numeric string")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 { return float64(f) }

// FlexInt accepts a JSON integer or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("value must be an integer or numeric string")
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	*f = FlexInt(v)
	return nil
}

func (f FlexInt) Int() int { return int(f) }
