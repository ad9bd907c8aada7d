// Package importer merges an uploaded YML catalog feed into the store:
// categories are upserted by their feed id, offers become products
// (deduplicated by name+price+category) with one characteristic row per
// param element.
package importer

import (
	"context"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/makeitweb/studio-backend/internal/apperr"
	"github.com/makeitweb/studio-backend/internal/events"
	"github.com/makeitweb/studio-backend/internal/logging"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/repo"
)

type catalogXML struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Shop    *shopXML `xml:"shop"`
}

type shopXML struct {
	Categories []categoryXML `xml:"categories>category"`
	Offers     []offerXML    `xml:"offers>offer"`
}

type categoryXML struct {
	ID    string `xml:"id,attr"`
	Title string `xml:",chardata"`
}

type offerXML struct {
	Model       string     `xml:"model"`
	Name        string     `xml:"name"`
	Price       string     `xml:"price"`
	CategoryID  string     `xml:"categoryId"`
	Description string     `xml:"description"`
	Pictures    []string   `xml:"picture"`
	Params      []paramXML `xml:"param"`
}

type paramXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Offer outcome statuses reported per feed entry.
const (
	StatusCreated   = "created"
	StatusDuplicate = "duplicate"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

type OfferResult struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	Characteristics int    `json:"characteristics,omitempty"`
}

type CategorySummary struct {
	Upserted int      `json:"upserted"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Report is the per-item outcome of one import run.
type Report struct {
	Categories CategorySummary `json:"categories"`
	Offers     []OfferResult   `json:"offers"`
}

func (r *Report) Created() int {
	n := 0
	for _, o := range r.Offers {
		if o.Status == StatusCreated {
			n++
		}
	}
	return n
}

type Importer struct {
	Categories *repo.CategoryRepo
	Products   *repo.ProductRepo
	Producer   *events.Producer
}

// Import parses the feed and merges it into the store. A file that does
// not parse, or one without a shop element, aborts the whole run; a
// single bad category or offer is recorded in the report and skipped.
func (im *Importer) Import(ctx context.Context, r io.Reader) (*Report, error) {
	var feed catalogXML
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "malformed XML catalog", err)
	}
	if feed.Shop == nil {
		return nil, apperr.New(apperr.KindParse, `invalid catalog structure: expected a "shop" element`)
	}

	report := &Report{}
	seen, err := im.importCategories(ctx, feed.Shop.Categories, report)
	if err != nil {
		return nil, err
	}
	if err := im.importOffers(ctx, feed.Shop.Offers, seen, report); err != nil {
		return nil, err
	}

	if err := im.Producer.Publish(ctx, "catalog_import", map[string]any{
		"type":       "catalog_import_completed",
		"categories": report.Categories.Upserted,
		"offers":     len(report.Offers),
		"created":    report.Created(),
	}); err != nil {
		logging.FromContext(ctx).Warn("catalog_event_publish_failed", "error", err)
	}

	return report, nil
}

func (im *Importer) importCategories(ctx context.Context, nodes []categoryXML, report *Report) (map[uint]bool, error) {
	l := logging.FromContext(ctx)
	seen := make(map[uint]bool, len(nodes))

	for _, node := range nodes {
		rawID := strings.TrimSpace(node.ID)
		id, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			l.Warn("import_category_skipped", "reason", "non-numeric id", "id", rawID)
			report.Categories.Skipped = append(report.Categories.Skipped, rawID)
			continue
		}

		if err := im.Categories.UpsertByID(ctx, uint(id), strings.TrimSpace(node.Title)); err != nil {
			return nil, err
		}
		seen[uint(id)] = true
		report.Categories.Upserted++
	}
	return seen, nil
}

func (im *Importer) importOffers(ctx context.Context, offers []offerXML, seen map[uint]bool, report *Report) error {
	l := logging.FromContext(ctx)

	for _, offer := range offers {
		name := strings.TrimSpace(offer.Model)
		if name == "" {
			name = strings.TrimSpace(offer.Name)
		}

		res := im.importOffer(ctx, offer, name, seen)
		if res.Status != StatusCreated {
			l.Warn("import_offer_not_created", "offer", name, "status", res.Status, "reason", res.Reason)
		}
		report.Offers = append(report.Offers, res)
	}
	return nil
}

func (im *Importer) importOffer(ctx context.Context, offer offerXML, name string, seen map[uint]bool) OfferResult {
	if name == "" {
		return OfferResult{Status: StatusSkipped, Reason: "offer has no model or name"}
	}

	rawCat := strings.TrimSpace(offer.CategoryID)
	catID, err := strconv.ParseUint(rawCat, 10, 32)
	if err != nil {
		return OfferResult{Name: name, Status: StatusSkipped, Reason: "non-numeric categoryId " + strconv.Quote(rawCat)}
	}
	categoryID := uint(catID)

	if !seen[categoryID] {
		exists, err := im.Categories.Exists(ctx, categoryID)
		if err != nil {
			return OfferResult{Name: name, Status: StatusFailed, Reason: err.Error()}
		}
		if !exists {
			return OfferResult{Name: name, Status: StatusSkipped, Reason: "unknown category " + rawCat}
		}
		seen[categoryID] = true
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(offer.Price), 64)
	if err != nil {
		price = 0
	}

	dup, err := im.Products.HasDuplicate(ctx, name, price, categoryID)
	if err != nil {
		return OfferResult{Name: name, Status: StatusFailed, Reason: err.Error()}
	}
	if dup {
		return OfferResult{Name: name, Status: StatusDuplicate, Reason: "same name, price and category already stored"}
	}

	prod := &models.Product{
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(offer.Description),
		CategoryID:  categoryID,
		Img:         trimAll(offer.Pictures),
	}
	if err := im.Products.CreateImported(ctx, prod); err != nil {
		return OfferResult{Name: name, Status: StatusFailed, Reason: err.Error()}
	}

	created := im.createCharacteristics(ctx, prod.ID, offer.Params)
	return OfferResult{Name: name, Status: StatusCreated, Characteristics: created}
}

// createCharacteristics inserts the offer's param rows concurrently.
// A failed or incomplete param never fails the parent product; it is
// logged and dropped.
func (im *Importer) createCharacteristics(ctx context.Context, productID uint, params []paramXML) int {
	l := logging.FromContext(ctx)

	var created atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, param := range params {
		name := strings.TrimSpace(param.Name)
		value := strings.TrimSpace(param.Value)
		if name == "" || value == "" {
			l.Warn("import_param_skipped", "reason", "missing name or value", "product_id", productID)
			continue
		}

		g.Go(func() error {
			ch := &models.ProductCharacteristic{ProductID: productID, Name: name, Value: value}
			if err := im.Products.AddCharacteristic(gctx, ch); err != nil {
				l.Warn("import_param_failed", "product_id", productID, "param", name, "error", err)
				return nil
			}
			created.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(created.Load())
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
