package services

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/models"
)

// ExportResult describes a generated report so the handler can name the
// download and pick the response content type.
type ExportResult struct {
	Filename    string
	ContentType string
	Records     int
}

// exportService assembles user data into CSV or PDF reports.
type exportService struct {
	db *gorm.DB

	now func() time.Time
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db, now: time.Now}
}

// exportData is everything a report can draw from, fetched once up front.
type exportData struct {
	incomes   []models.Income
	expenses  []models.Expense
	transfers []models.Transfer
	budgets   []models.Budget
	banks     []models.BankAccount
	wallets   []models.Wallet
}

// rangeCutoff resolves a named date range to its cutoff instant and a
// human-readable label. Unknown ranges fall back to the last month.
func (s *exportService) rangeCutoff(dateRange string) (time.Time, string) {
	now := s.now()
	switch dateRange {
	case "6months":
		return now.AddDate(0, -6, 0), "Last 6 Months"
	case "lastQuarter":
		return now.AddDate(0, -3, 0), "Last Quarter"
	case "lastYear":
		return now.AddDate(-1, 0, 0), "Last Year"
	default:
		return now.AddDate(0, -1, 0), "Last Month"
	}
}

// Export fetches the requested slices of the user's history, normalizes them,
// and streams the rendered report into w.
func (s *exportService) Export(user *models.User, dataType, dateRange, format string, w io.Writer) (*ExportResult, error) {
	switch format {
	case "csv", "pdf":
	default:
		return nil, apperrors.ErrInvalidFormat
	}
	switch dataType {
	case "all", "income", "expense", "transfer", "budget":
	default:
		return nil, apperrors.ErrInvalidDataType
	}

	cutoff, rangeLabel := s.rangeCutoff(dateRange)

	data, err := s.fetch(user.ID, dataType, cutoff, format == "pdf")
	if err != nil {
		return nil, err
	}

	total := len(data.incomes) + len(data.expenses) + len(data.transfers) + len(data.budgets)
	if total == 0 {
		return nil, apperrors.ErrNoExportData
	}

	result := &ExportResult{
		Filename: fmt.Sprintf("financial-report-%s-%s.%s", dataType, s.now().Format("20060102-150405"), format),
		Records:  total,
	}

	switch format {
	case "csv":
		result.ContentType = "text/csv"
		if err := export.WriteCSV(w, toRecords(data)); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case "pdf":
		result.ContentType = "application/pdf"
		rep := s.buildReport(user, dataType, rangeLabel, data)
		if err := export.WritePDF(w, rep); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return result, nil
}

// fetch runs the per-type queries concurrently. Bank accounts and wallets
// are only loaded for the full PDF report, where they get their own sections.
func (s *exportService) fetch(userID uint, dataType string, cutoff time.Time, withOrigins bool) (*exportData, error) {
	data := &exportData{}
	var g errgroup.Group

	if dataType == "all" || dataType == "income" {
		g.Go(func() error {
			return s.db.Where("user_id = ? AND created_at >= ?", userID, cutoff).
				Order("created_at DESC").
				Find(&data.incomes).Error
		})
	}
	if dataType == "all" || dataType == "expense" {
		g.Go(func() error {
			return s.db.Where("user_id = ? AND created_at >= ?", userID, cutoff).
				Order("created_at DESC").
				Find(&data.expenses).Error
		})
	}
	if dataType == "all" || dataType == "transfer" {
		g.Go(func() error {
			return s.db.Where("user_id = ? AND created_at >= ?", userID, cutoff).
				Order("created_at DESC").
				Find(&data.transfers).Error
		})
	}
	if dataType == "all" || dataType == "budget" {
		g.Go(func() error {
			return s.db.Where("user_id = ? AND created_at >= ?", userID, cutoff).
				Order("created_at DESC").
				Find(&data.budgets).Error
		})
	}
	if dataType == "all" && withOrigins {
		g.Go(func() error {
			return s.db.Where("user_id = ?", userID).Order("name").Find(&data.banks).Error
		})
		g.Go(func() error {
			return s.db.Where("user_id = ?", userID).Order("name").Find(&data.wallets).Error
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// toRecords flattens the fetched rows into the common export column set,
// grouped by type.
func toRecords(data *exportData) []export.Record {
	records := make([]export.Record, 0,
		len(data.incomes)+len(data.expenses)+len(data.transfers)+len(data.budgets))

	for _, in := range data.incomes {
		records = append(records, export.Record{
			Type:        "income",
			ID:          in.ID,
			Name:        string(in.Source),
			Amount:      in.Amount,
			BankName:    deref(in.BankName),
			WalletName:  deref(in.WalletName),
			Description: in.Description,
			CreatedAt:   in.CreatedAt,
		})
	}
	for _, ex := range data.expenses {
		records = append(records, export.Record{
			Type:        "expense",
			ID:          ex.ID,
			Name:        string(ex.Source),
			Amount:      ex.Amount,
			BankName:    deref(ex.BankName),
			WalletName:  deref(ex.WalletName),
			Description: ex.Description,
			CreatedAt:   ex.CreatedAt,
		})
	}
	for _, tr := range data.transfers {
		records = append(records, export.Record{
			Type:      "transfer",
			ID:        tr.ID,
			Amount:    tr.Amount,
			Sender:    tr.Sender,
			Receiver:  tr.Receiver,
			CreatedAt: tr.CreatedAt,
		})
	}
	for _, b := range data.budgets {
		records = append(records, export.Record{
			Type:      "budget",
			ID:        b.ID,
			Name:      b.Name,
			Amount:    b.TotalBudget,
			CreatedAt: b.CreatedAt,
		})
	}
	return records
}

// buildReport lays out the PDF sections for the requested data type.
func (s *exportService) buildReport(user *models.User, dataType, rangeLabel string, data *exportData) *export.Report {
	rep := &export.Report{
		UserName:    user.Name,
		UserEmail:   user.Email,
		RangeLabel:  rangeLabel,
		GeneratedAt: s.now(),
	}
	for _, in := range data.incomes {
		rep.Summary.TotalIncome += in.Amount
	}
	for _, ex := range data.expenses {
		rep.Summary.TotalExpense += ex.Amount
	}
	for _, tr := range data.transfers {
		rep.Summary.TotalTransfers += tr.Amount
	}
	for _, b := range data.budgets {
		rep.Summary.TotalBudgets += b.TotalBudget
	}

	if dataType == "all" || dataType == "income" {
		sec := export.Section{
			Title:     "Income",
			Headers:   []string{"ID", "Date", "Source", "Origin", "Description", "Amount"},
			Widths:    []float64{14, 26, 28, 36, 48, 30},
			MoneyCols: map[int]bool{5: true},
		}
		for _, in := range data.incomes {
			sec.Rows = append(sec.Rows, []string{
				fmt.Sprintf("%d", in.ID),
				in.CreatedAt.Format("2006-01-02"),
				string(in.Source),
				originLabel(in.BankName, in.WalletName),
				in.Description,
				export.FormatCents(in.Amount),
			})
		}
		rep.Sections = append(rep.Sections, sec)
	}
	if dataType == "all" || dataType == "expense" {
		sec := export.Section{
			Title:     "Expenses",
			Headers:   []string{"ID", "Date", "Source", "Origin", "Description", "Amount"},
			Widths:    []float64{14, 26, 28, 36, 48, 30},
			MoneyCols: map[int]bool{5: true},
		}
		for _, ex := range data.expenses {
			sec.Rows = append(sec.Rows, []string{
				fmt.Sprintf("%d", ex.ID),
				ex.CreatedAt.Format("2006-01-02"),
				string(ex.Source),
				originLabel(ex.BankName, ex.WalletName),
				ex.Description,
				export.FormatCents(ex.Amount),
			})
		}
		rep.Sections = append(rep.Sections, sec)
	}
	if dataType == "all" || dataType == "transfer" {
		sec := export.Section{
			Title:     "Transfers",
			Headers:   []string{"ID", "Date", "Sender", "Receiver", "Direction", "Amount"},
			Widths:    []float64{14, 26, 40, 40, 28, 34},
			MoneyCols: map[int]bool{5: true},
		}
		for _, tr := range data.transfers {
			direction := "incoming"
			if tr.IsExpense {
				direction = "outgoing"
			}
			sec.Rows = append(sec.Rows, []string{
				fmt.Sprintf("%d", tr.ID),
				tr.CreatedAt.Format("2006-01-02"),
				tr.Sender,
				tr.Receiver,
				direction,
				export.FormatCents(tr.Amount),
			})
		}
		rep.Sections = append(rep.Sections, sec)
	}
	if dataType == "all" || dataType == "budget" {
		sec := export.Section{
			Title:     "Budgets",
			Headers:   []string{"ID", "Date", "Name", "Total Budget", "Current"},
			Widths:    []float64{14, 26, 62, 40, 40},
			MoneyCols: map[int]bool{3: true, 4: true},
		}
		for _, b := range data.budgets {
			sec.Rows = append(sec.Rows, []string{
				fmt.Sprintf("%d", b.ID),
				b.CreatedAt.Format("2006-01-02"),
				b.Name,
				export.FormatCents(b.TotalBudget),
				export.FormatCents(b.Current),
			})
		}
		rep.Sections = append(rep.Sections, sec)
	}
	if dataType == "all" && (len(data.banks) > 0 || len(data.wallets) > 0) {
		banksSec := export.Section{
			Title:     "Bank Accounts",
			Headers:   []string{"ID", "Opened", "Bank", "Balance"},
			Widths:    []float64{14, 26, 102, 40},
			MoneyCols: map[int]bool{3: true},
		}
		for _, acc := range data.banks {
			banksSec.Rows = append(banksSec.Rows, []string{
				fmt.Sprintf("%d", acc.ID),
				acc.CreatedAt.Format("2006-01-02"),
				string(acc.Name),
				export.FormatCents(acc.Amount),
			})
		}
		walletsSec := export.Section{
			Title:     "Wallets",
			Headers:   []string{"ID", "Opened", "Number", "Name", "Balance"},
			Widths:    []float64{14, 26, 44, 58, 40},
			MoneyCols: map[int]bool{4: true},
		}
		for _, w := range data.wallets {
			walletsSec.Rows = append(walletsSec.Rows, []string{
				fmt.Sprintf("%d", w.ID),
				w.CreatedAt.Format("2006-01-02"),
				w.WalletNumber,
				w.Name,
				export.FormatCents(w.Amount),
			})
		}
		rep.Sections = append(rep.Sections, banksSec, walletsSec)
	}
	return rep
}

// originLabel describes where money came from or went to.
func originLabel(bankName, walletName *string) string {
	switch {
	case bankName != nil && *bankName != "":
		return "bank: " + *bankName
	case walletName != nil && *walletName != "":
		return "wallet: " + *walletName
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
