// Package leavequery holds the read-only views over stored leave requests:
// approver inboxes, personal history and the HR search.
package leavequery

import (
	"context"
	"sort"
	"strings"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	leavequeryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leavequery/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"

	"go.uber.org/zap"
)

// FilterAll matches every value of a filter field.
const FilterAll = "ALL"

type Filter struct {
	// Text is matched case-insensitively against the requester's display
	// name and the reason.
	Text      string
	LeaveType string
	Status    string
}

// View pairs a request with its requester's display name.
type View struct {
	Request       leave.LeaveRequest
	RequesterName string
}

//go:generate mockgen -source=leavequery_service.go -destination=mock/leavequery_service_mock.go -package=mock
type Service interface {
	// PendingFor lists pending requests the user may act on, in creation order.
	PendingFor(ctx context.Context, userID string) ([]View, error)
	// HistoryFor lists the user's own requests, latest start date first.
	HistoryFor(ctx context.Context, userID string) ([]View, error)
	SearchAll(ctx context.Context, filter Filter) ([]View, error)
	// Get returns one request when the viewer filed it, holds a role on its
	// chain, or canReadAll is set. Otherwise it reports not found.
	Get(ctx context.Context, id, viewerID string, canReadAll bool) (View, error)
}

type service struct {
	store     leave.Store
	registry  registry.Registry
	directory registry.Directory
	logger    *zap.Logger
}

func NewService(store leave.Store, reg registry.Registry, directory registry.Directory, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavequery.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavequery.service")
	}
	return &service{store: store, registry: reg, directory: directory, logger: l}
}

func (s *service) PendingFor(ctx context.Context, userID string) ([]View, error) {
	roles, err := s.registry.RolesOf(ctx, userID)
	if err != nil {
		s.logger.Error("pending roles lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("pending list failed", zap.Error(err))
		return nil, err
	}

	out := make([]leave.LeaveRequest, 0)
	for _, r := range all {
		if r.Status == leave.StatusPending && registry.Authorize(roles, r.CurrentApproverRole) {
			out = append(out, r)
		}
	}
	return s.withNames(ctx, out)
}

func (s *service) HistoryFor(ctx context.Context, userID string) ([]View, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("history list failed", zap.Error(err))
		return nil, err
	}

	out := make([]leave.LeaveRequest, 0)
	for _, r := range all {
		if r.RequesterID == userID {
			out = append(out, r)
		}
	}
	sortByStartDesc(out)
	return s.withNames(ctx, out)
}

func (s *service) SearchAll(ctx context.Context, filter Filter) ([]View, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("search list failed", zap.Error(err))
		return nil, err
	}

	views, err := s.withNames(ctx, all)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(filter.Text)
	out := make([]View, 0, len(views))
	for _, v := range views {
		if filter.LeaveType != "" && v.Request.LeaveType != filter.LeaveType {
			continue
		}
		if filter.Status != "" && string(v.Request.Status) != filter.Status {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(v.RequesterName), text) &&
			!strings.Contains(strings.ToLower(v.Request.Reason), text) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Request.StartDate.After(out[j].Request.StartDate)
	})
	return out, nil
}

func (s *service) Get(ctx context.Context, id, viewerID string, canReadAll bool) (View, error) {
	req, err := s.store.GetByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	if !canReadAll && req.RequesterID != viewerID {
		roles, err := s.registry.RolesOf(ctx, viewerID)
		if err != nil {
			return View{}, err
		}
		if !onChain(roles, req.ApprovalChain) {
			s.logger.Warn("leave hidden from viewer", zap.String("leave_id", id), zap.String("viewer_id", viewerID))
			return View{}, leaveerrors.ErrLeaveNotFound
		}
	}

	views, err := s.withNames(ctx, []leave.LeaveRequest{*req})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

func onChain(roles registry.RoleSet, chain registry.RoleList) bool {
	for _, r := range chain {
		if registry.Authorize(roles, r) {
			return true
		}
	}
	return false
}

// withNames resolves each requester once per call.
func (s *service) withNames(ctx context.Context, rows []leave.LeaveRequest) ([]View, error) {
	names := make(map[string]string)
	out := make([]View, 0, len(rows))
	for _, r := range rows {
		name, ok := names[r.RequesterID]
		if !ok {
			u, err := s.directory.Lookup(ctx, r.RequesterID)
			if err != nil {
				s.logger.Error("directory lookup failed", zap.String("user_id", r.RequesterID), zap.Error(err))
				return nil, err
			}
			name = u.DisplayName()
			names[r.RequesterID] = name
		}
		out = append(out, View{Request: r, RequesterName: name})
	}
	return out, nil
}

func normalizeFilter(f Filter) (Filter, error) {
	f.Text = strings.TrimSpace(f.Text)
	f.LeaveType = strings.TrimSpace(f.LeaveType)
	if strings.EqualFold(f.LeaveType, FilterAll) {
		f.LeaveType = ""
	}

	f.Status = strings.ToUpper(strings.TrimSpace(f.Status))
	switch leave.Status(f.Status) {
	case "", FilterAll:
		f.Status = ""
	case leave.StatusPending, leave.StatusApproved, leave.StatusRejected:
	default:
		return f, leavequeryerrors.ErrInvalidStatusFilter
	}
	return f, nil
}

func sortByStartDesc(rows []leave.LeaveRequest) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StartDate.After(rows[j].StartDate)
	})
}
