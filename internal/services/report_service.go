package services

import (
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

type ReportService interface {
	Create(reporterID string, req dto.CreateReportRequest) (*models.Report, error)
	ListByStatus(status models.ReportStatus, page, pageSize int) ([]models.Report, int64, error)
	Resolve(reviewerID, reportID string, req dto.ResolveReportRequest) error
}

type reportService struct {
	reportRepo    repositories.ReportRepository
	userRepo      repositories.UserRepository
	resolver      *EntityResolver
	notifications NotificationService
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	userRepo repositories.UserRepository,
	resolver *EntityResolver,
	notifications NotificationService,
) ReportService {
	return &reportService{
		reportRepo:    reportRepo,
		userRepo:      userRepo,
		resolver:      resolver,
		notifications: notifications,
	}
}

func (s *reportService) Create(reporterID string, req dto.CreateReportRequest) (*models.Report, error) {
	entityType := models.EntityType(req.EntityType)
	if _, err := s.resolver.Resolve(entityType, req.EntityID); err != nil {
		return nil, err
	}

	report := &models.Report{
		EntityType: entityType,
		EntityID:   req.EntityID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Status:     models.ReportStatusOpen,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}

	// Alert the moderation team; a failed notification does not fail
	// the report.
	if staffIDs, err := s.userRepo.FindStaffIDs(); err == nil {
		for _, staffID := range staffIDs {
			_ = s.notifications.NotifyContentReported(staffID, report.ID)
		}
	}

	return report, nil
}

func (s *reportService) ListByStatus(status models.ReportStatus, page, pageSize int) ([]models.Report, int64, error) {
	return s.reportRepo.ListByStatus(status, page, pageSize)
}

func (s *reportService) Resolve(reviewerID, reportID string, req dto.ResolveReportRequest) error {
	if _, err := s.reportRepo.FindByID(reportID); err != nil {
		return err
	}
	return s.reportRepo.Resolve(reportID, reviewerID, req.Status, req.Resolution)
}
