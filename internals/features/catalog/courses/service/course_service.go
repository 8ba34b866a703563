package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/dbtime"
)

const MsgNoFieldsToUpdate = "No fields to update"

type CourseService struct {
	repo  repository.CourseRepository
	today func() dbtime.Date
	log   zerolog.Logger
}

func NewCourseService(repo repository.CourseRepository) *CourseService {
	return &CourseService{
		repo:  repo,
		today: dbtime.TodayUTC,
		log:   log.With().Str("component", "course").Logger(),
	}
}

// WithClock overrides the source of "today" for past/upcoming queries.
func (s *CourseService) WithClock(today func() dbtime.Date) *CourseService {
	s.today = today
	return s
}

func notFound(id uint) error {
	return apperr.NotFound("Course %d not found", id)
}

func validateDates(start, end *dbtime.Date) error {
	if start != nil && end != nil && start.After(*end) {
		return apperr.Validation("start_date must be on or before end_date")
	}
	return nil
}

func validateNumbers(capacity, sessions, duration *int) error {
	if capacity != nil && *capacity <= 0 {
		return apperr.Validation("capacity must be positive")
	}
	if sessions != nil && *sessions < 0 {
		return apperr.Validation("session_counts must be non-negative")
	}
	if duration != nil && *duration <= 0 {
		return apperr.Validation("session_duration_minutes must be positive")
	}
	return nil
}

func (s *CourseService) checkReferences(ctx context.Context, deliveryModeID *uint, venueID *uint) error {
	if deliveryModeID != nil {
		ok, err := s.repo.DeliveryModeExists(ctx, *deliveryModeID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("delivery_mode_id %d does not exist", *deliveryModeID)
		}
	}
	if venueID != nil {
		ok, err := s.repo.VenueExists(ctx, *venueID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("venue_id %d does not exist", *venueID)
		}
	}
	return nil
}

func mapWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return apperr.Wrap(apperr.KindValidation, err, "delivery_mode_id or venue_id does not exist")
	}
	return err
}

func (s *CourseService) ListCourses(ctx context.Context) ([]dto.CourseListDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCourseListDTOs(rows), nil
}

func (s *CourseService) ListPastCourses(ctx context.Context) ([]dto.CourseDTO, error) {
	rows, err := s.repo.ListPast(ctx, s.today())
	if err != nil {
		return nil, err
	}
	return dto.ToCourseDTOs(rows), nil
}

func (s *CourseService) ListUpcomingCourses(ctx context.Context) ([]dto.CourseDTO, error) {
	rows, err := s.repo.ListUpcoming(ctx, s.today())
	if err != nil {
		return nil, err
	}
	return dto.ToCourseDTOs(rows), nil
}

// SearchCourses never returns an unfiltered list: blank q yields nothing.
func (s *CourseService) SearchCourses(ctx context.Context, q string) ([]dto.CourseListDTO, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.CourseListDTO{}, nil
	}
	rows, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.ToCourseListDTOs(rows), nil
}

func (s *CourseService) get(ctx context.Context, id uint) (*model.CourseModel, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(id)
	}
	return c, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id uint) (dto.CourseDTO, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return dto.CourseDTO{}, err
	}
	return dto.ToCourseDTO(c), nil
}

func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (dto.CourseDTO, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return dto.CourseDTO{}, apperr.Validation("title cannot be empty")
	}
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return dto.CourseDTO{}, err
	}
	if err := validateNumbers(req.Capacity, req.SessionCounts, req.SessionDurationMinutes); err != nil {
		return dto.CourseDTO{}, err
	}
	if err := s.checkReferences(ctx, &req.DeliveryModeID, req.VenueID); err != nil {
		return dto.CourseDTO{}, err
	}

	created, err := s.repo.Create(ctx, req.ToModel(), req.InstructorIDs)
	if err != nil {
		return dto.CourseDTO{}, mapWriteError(err)
	}
	s.log.Info().Uint("id", created.ID).Str("title", created.Title).Msg("course created")
	return dto.ToCourseDTO(created), nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id uint, req dto.UpdateCourseRequest) (dto.CourseDTO, error) {
	if helper.CountProvided(req) == 0 {
		return dto.CourseDTO{}, apperr.Validation(MsgNoFieldsToUpdate)
	}
	c, err := s.get(ctx, id)
	if err != nil {
		return dto.CourseDTO{}, err
	}

	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return dto.CourseDTO{}, apperr.Validation("title cannot be empty")
		}
		req.Title = &t
	}
	start, end := req.StartDate, req.EndDate
	if start == nil && c.StartDate != nil {
		v := dbtime.Date(*c.StartDate)
		start = &v
	}
	if end == nil && c.EndDate != nil {
		v := dbtime.Date(*c.EndDate)
		end = &v
	}
	if err := validateDates(start, end); err != nil {
		return dto.CourseDTO{}, err
	}
	if err := validateNumbers(req.Capacity, req.SessionCounts, req.SessionDurationMinutes); err != nil {
		return dto.CourseDTO{}, err
	}
	if err := s.checkReferences(ctx, req.DeliveryModeID, req.VenueID); err != nil {
		return dto.CourseDTO{}, err
	}

	fields, err := helper.MergePatch(c, req)
	if err != nil {
		return dto.CourseDTO{}, err
	}
	updated, err := s.repo.Update(ctx, c, repository.CoursePatch{Fields: fields, InstructorIDs: req.InstructorIDs})
	if err != nil {
		return dto.CourseDTO{}, mapWriteError(err)
	}
	return dto.ToCourseDTO(updated), nil
}

// DeleteCourse returns the deleted record for the deletion summary.
func (s *CourseService) DeleteCourse(ctx context.Context, id uint) (dto.DeletedCourseDTO, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return dto.DeletedCourseDTO{}, err
	}
	if err := s.repo.Delete(ctx, c); err != nil {
		return dto.DeletedCourseDTO{}, err
	}
	s.log.Info().Uint("id", id).Msg("course deleted")
	return dto.DeletedCourseDTO{
		Info:         constants.DeletedCourse(id),
		CourseRecord: dto.ToCourseDTO(c),
	}, nil
}

// CountPast and CountUpcoming feed the catalog gauges.
func (s *CourseService) CountPast(ctx context.Context) (int64, error) {
	return s.repo.CountPast(ctx, s.today())
}

func (s *CourseService) CountUpcoming(ctx context.Context) (int64, error) {
	return s.repo.CountUpcoming(ctx, s.today())
}
