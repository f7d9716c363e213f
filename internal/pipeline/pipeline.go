// Package pipeline orchestrates a generation run: it drives the nine
// generators in dependency order, backfills invoice totals, persists
// every table, and gates success on the validator.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/toolshop/seedgen/internal/csvstore"
	"github.com/toolshop/seedgen/internal/gen"
	"github.com/toolshop/seedgen/internal/validate"
	"github.com/toolshop/seedgen/pkg/types"
)

// Pipeline states, in transition order. A run either reaches StateDone
// or halts at the validation gate; there is no partial success.
const (
	StateInit                = "INIT"
	StateGenIndependent      = "GEN_INDEPENDENT"
	StateGenDependent        = "GEN_DEPENDENT"
	StateGenItemsAndBackfill = "GEN_ITEMS_AND_BACKFILL"
	StatePersist             = "PERSIST"
	StateValidate            = "VALIDATE"
	StateDone                = "DONE"
	StateHalted              = "HALTED"
)

// ReportFileName is the error report written next to the CSV files
// when validation fails.
const ReportFileName = "validation_errors.txt"

// Dataset holds every generated table of one run.
type Dataset struct {
	Users         []types.User
	Categories    []types.Category
	Brands        []types.Brand
	ProductImages []types.ProductImage
	Products      []types.Product
	Favorites     []types.Favorite
	Invoices      []types.Invoice
	InvoiceItems  []types.InvoiceItem
	Payments      []types.Payment
}

// Runner executes the generation pipeline. Single-threaded: generation
// is deterministic and cheap, so a failed run is rerun with a fixed
// config rather than retried or patched.
type Runner struct {
	cfg   types.Config
	log   zerolog.Logger
	state string
}

// New returns a Runner for cfg logging to log.
func New(cfg types.Config, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log, state: StateInit}
}

// State reports the current pipeline state.
func (r *Runner) State() string { return r.state }

// ReportPath returns the location of the validation error report for
// this run's output directory.
func (r *Runner) ReportPath() string {
	return filepath.Join(r.cfg.OutputDir, ReportFileName)
}

// Run executes all phases. On a validation failure it writes the error
// report, moves to StateHalted, and returns an error wrapping
// types.ErrValidationFailed; the output files are left in place for
// inspection but must not be consumed.
func (r *Runner) Run() (*Dataset, error) {
	if err := r.cfg.Validate(); err != nil {
		r.state = StateHalted
		return nil, err
	}
	src := gen.NewSource(r.cfg)
	ds := &Dataset{}
	r.log.Info().Int64("seed", r.cfg.Seed).Str("out", r.cfg.OutputDir).Msg("starting generation run")

	r.state = StateGenIndependent
	ds.Users = gen.Users(src, r.cfg.NumUsers)
	ds.Categories = gen.Categories(src, r.cfg.NumCategories)
	ds.Brands = gen.Brands(src, r.cfg.NumBrands)
	ds.ProductImages = gen.ProductImages(src, r.cfg.NumProductImages, ds.Categories)
	r.log.Info().
		Int("users", len(ds.Users)).
		Int("categories", len(ds.Categories)).
		Int("brands", len(ds.Brands)).
		Int("product_images", len(ds.ProductImages)).
		Msg("independent tables generated")

	r.state = StateGenDependent
	ds.Products = gen.Products(src, r.cfg.NumProducts, ds.Categories, ds.Brands, ds.ProductImages)
	ds.Favorites = gen.Favorites(src, r.cfg.NumFavorites, ds.Users, ds.Products)
	invoiceSet := gen.Invoices(src, r.cfg.NumInvoices, ds.Users)
	r.log.Info().
		Int("products", len(ds.Products)).
		Int("favorites", len(ds.Favorites)).
		Int("invoices", invoiceSet.Len()).
		Msg("dependent tables generated")

	r.state = StateGenItemsAndBackfill
	items, totals := gen.InvoiceItems(src, r.cfg.NumInvoiceItems, invoiceSet, ds.Products)
	ds.InvoiceItems = items
	if err := invoiceSet.Close(totals); err != nil {
		r.state = StateHalted
		return nil, fmt.Errorf("backfill invoice totals: %w", err)
	}
	invoices, err := invoiceSet.Rows()
	if err != nil {
		r.state = StateHalted
		return nil, fmt.Errorf("read invoices: %w", err)
	}
	ds.Invoices = invoices
	ds.Payments = gen.Payments(src, r.cfg.NumPayments, ds.Invoices)
	r.log.Info().
		Int("invoice_items", len(ds.InvoiceItems)).
		Int("payments", len(ds.Payments)).
		Msg("invoice items generated and totals backfilled")

	r.state = StatePersist
	if err := r.persist(ds); err != nil {
		r.state = StateHalted
		return nil, err
	}
	r.log.Info().Str("dir", r.cfg.OutputDir).Msg("tables persisted")

	r.state = StateValidate
	result := validate.New(r.cfg.OutputDir).Run()
	validate.Summarize(r.log, result)
	if !result.Valid {
		if err := validate.WriteReport(r.ReportPath(), result); err != nil {
			r.log.Error().Err(err).Msg("write validation report")
		} else {
			r.log.Error().Str("report", r.ReportPath()).Msg("validation report written")
		}
		r.state = StateHalted
		return nil, fmt.Errorf("%w: %d violations", types.ErrValidationFailed, len(result.Violations))
	}

	r.state = StateDone
	r.summarize(ds)
	return ds, nil
}

// persist writes every table to the output directory in declared
// column order.
func (r *Runner) persist(ds *Dataset) error {
	dir := r.cfg.OutputDir

	write := func(table string, columns []string, rows [][]string) error {
		if err := csvstore.Write(dir, table, columns, rows); err != nil {
			return fmt.Errorf("persist %s: %w", table, err)
		}
		return nil
	}

	if err := write(types.TableUsers, types.UserColumns, rowsOf(ds.Users)); err != nil {
		return err
	}
	if err := write(types.TableCategories, types.CategoryColumns, rowsOf(ds.Categories)); err != nil {
		return err
	}
	if err := write(types.TableBrands, types.BrandColumns, rowsOf(ds.Brands)); err != nil {
		return err
	}
	if err := write(types.TableProductImages, types.ProductImageColumns, rowsOf(ds.ProductImages)); err != nil {
		return err
	}
	if err := write(types.TableProducts, types.ProductColumns, rowsOf(ds.Products)); err != nil {
		return err
	}
	if err := write(types.TableFavorites, types.FavoriteColumns, rowsOf(ds.Favorites)); err != nil {
		return err
	}
	if err := write(types.TableInvoices, types.InvoiceColumns, rowsOf(ds.Invoices)); err != nil {
		return err
	}
	if err := write(types.TableInvoiceItems, types.InvoiceItemColumns, rowsOf(ds.InvoiceItems)); err != nil {
		return err
	}
	return write(types.TablePayments, types.PaymentColumns, rowsOf(ds.Payments))
}

// rower is any record that can render itself as a CSV row.
type rower interface{ Row() []string }

// rowsOf renders a record slice into CSV rows.
func rowsOf[T rower](records []T) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Row()
	}
	return rows
}
