package service

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
	"github.com/jengzang/life-rhythms-go/internal/observability"
	"github.com/jengzang/life-rhythms-go/internal/render"
)

// DashboardService handles business logic for the dashboard views
type DashboardService struct {
	ds      *dataset.Dataset
	options models.FilterOptions
}

// NewDashboardService creates a new dashboard service over a loaded dataset
func NewDashboardService(ds *dataset.Dataset, defaultHour int) *DashboardService {
	observability.SetDatasetRows(ds.Len())
	return &DashboardService{
		ds:      ds,
		options: mapper.Options(ds, defaultHour),
	}
}

// Options returns the control domains and the default selection
func (s *DashboardService) Options() models.FilterOptions {
	return s.options
}

// DefaultSelection returns the selection used for missing query parameters
func (s *DashboardService) DefaultSelection() models.Selection {
	return s.options.Default
}

// Rows returns the dataset size
func (s *DashboardService) Rows() int {
	return s.ds.Len()
}

// Dashboard builds all four views for sel
func (s *DashboardService) Dashboard(sel models.Selection) (mapper.Dashboard, error) {
	d, err := mapper.Map(s.ds, sel)
	if err != nil {
		return mapper.Dashboard{}, s.observeError(err)
	}
	for _, v := range d.Views {
		observability.RecordView(v.ID, len(v.Rows()))
	}
	return d, nil
}

// View builds a single view by id
func (s *DashboardService) View(id string, sel models.Selection) (mapper.View, error) {
	if !slices.Contains(mapper.ViewIDs, id) {
		return mapper.View{}, fmt.Errorf("%w: %q", mapper.ErrUnknownView, id)
	}
	if err := mapper.Validate(s.ds, sel); err != nil {
		return mapper.View{}, s.observeError(err)
	}

	v, err := mapper.Build(s.ds, id, sel)
	if err != nil {
		return mapper.View{}, err
	}
	observability.RecordView(v.ID, len(v.Rows()))
	return v, nil
}

// Preview renders the PNG preview of one view to w
func (s *DashboardService) Preview(id string, sel models.Selection, w io.Writer) error {
	v, err := s.View(id, sel)
	if err != nil {
		return err
	}
	if err := render.PNG(v.Chart, w); err != nil {
		return fmt.Errorf("preview %s: %w", id, err)
	}
	return nil
}

func (s *DashboardService) observeError(err error) error {
	var invalid *mapper.InvalidFilterValueError
	if errors.As(err, &invalid) {
		observability.RecordInvalidFilter(invalid.Field)
	}
	return err
}
