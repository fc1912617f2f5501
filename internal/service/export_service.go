package service

import (
	"fmt"
	"time"

	"github.com/Nayan1809/SMD/internal/models"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
	"github.com/Nayan1809/SMD/pkg/export"
)

var exportHeaders = []string{"Name", "Email", "Status", "Courses", "Enrolled", "Last Active"}

type viewRows interface {
	FilteredSorted() []models.Student
}

// ExportService renders the current view (every filtered row in sorted
// order, ignoring pagination) as a downloadable roster.
type ExportService struct {
	view    viewRows
	catalog courseNamer
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	title   string
}

// NewExportService constructs the export service.
func NewExportService(view viewRows, catalog courseNamer, title string) *ExportService {
	if title == "" {
		title = "Student Roster"
	}
	return &ExportService{
		view:    view,
		catalog: catalog,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		title:   title,
	}
}

// Render produces the roster in the requested format. Supported formats are
// "csv" and "pdf".
func (s *ExportService) Render(format string) (filename, contentType string, data []byte, err error) {
	dataset := s.dataset()
	stamp := time.Now().UTC().Format("20060102")

	switch format {
	case "csv", "":
		data, err = s.csv.Render(dataset)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return fmt.Sprintf("students-%s.csv", stamp), "text/csv", data, nil
	case "pdf":
		data, err = s.pdf.Render(dataset, s.title)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return fmt.Sprintf("students-%s.pdf", stamp), "application/pdf", data, nil
	default:
		return "", "", nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *ExportService) dataset() export.Dataset {
	students := s.view.FilteredSorted()
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		rows = append(rows, map[string]string{
			"Name":        student.Name,
			"Email":       student.Email,
			"Status":      student.Status,
			"Courses":     s.catalog.CourseNames(student.CourseIDs),
			"Enrolled":    student.EnrollmentDate.Format("2006-01-02"),
			"Last Active": student.LastActive.Format("2006-01-02"),
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
