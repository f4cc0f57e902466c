package server

import (
	"context"
	"errors"
	"net/http"

	"progress-tracker/internal/constants"
	"progress-tracker/internal/domain"
	"progress-tracker/internal/service"

	"connectrpc.com/connect"
)

const (
	GetViewProcedure        = constants.ProgressTrackerPath + "GetView"
	GetStatsProcedure       = constants.ProgressTrackerPath + "GetStats"
	GetStatusProcedure      = constants.ProgressTrackerPath + "GetStatus"
	ListLoadEventsProcedure = constants.ProgressTrackerPath + "ListLoadEvents"
)

type ProgressServer struct {
	dashboardSvc *service.DashboardService
}

func NewProgressServer(dashboardSvc *service.DashboardService) *ProgressServer {
	return &ProgressServer{dashboardSvc: dashboardSvc}
}

// Handler mounts every procedure under constants.ProgressTrackerPath.
func (s *ProgressServer) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetViewProcedure, connect.NewUnaryHandler(GetViewProcedure, s.GetView, opts...))
	mux.Handle(GetStatsProcedure, connect.NewUnaryHandler(GetStatsProcedure, s.GetStats, opts...))
	mux.Handle(GetStatusProcedure, connect.NewUnaryHandler(GetStatusProcedure, s.GetStatus, opts...))
	mux.Handle(ListLoadEventsProcedure, connect.NewUnaryHandler(ListLoadEventsProcedure, s.ListLoadEvents, opts...))
	return constants.ProgressTrackerPath, mux
}

func (s *ProgressServer) GetView(ctx context.Context, req *connect.Request[ViewRequest]) (*connect.Response[ViewResponse], error) {
	q, err := s.dashboardSvc.ParseQuery(req.Msg.Search, req.Msg.Status, req.Msg.Sort)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatusFilter) || errors.Is(err, domain.ErrUnknownSortOption) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	v := s.dashboardSvc.View(ctx, q)
	return connect.NewResponse(&ViewResponse{
		Records: v.Records,
		Shown:   v.Shown,
		Total:   v.Total,
		Stats:   v.Stats,
		Status:  string(q.Status),
		Sort:    string(q.Sort),
		Loading: v.Loading,
	}), nil
}

func (s *ProgressServer) GetStats(ctx context.Context, req *connect.Request[StatsRequest]) (*connect.Response[StatsResponse], error) {
	stats, loading := s.dashboardSvc.Stats()
	return connect.NewResponse(&StatsResponse{Stats: stats, Loading: loading}), nil
}

func (s *ProgressServer) GetStatus(ctx context.Context, req *connect.Request[StatusRequest]) (*connect.Response[StatusResponse], error) {
	st := s.dashboardSvc.Status()
	resp := &StatusResponse{
		State:       string(st.State),
		Source:      st.Source,
		RecordCount: st.RecordCount,
	}
	if !st.LoadedAt.IsZero() {
		loadedAt := st.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return connect.NewResponse(resp), nil
}

func (s *ProgressServer) ListLoadEvents(ctx context.Context, req *connect.Request[ListLoadEventsRequest]) (*connect.Response[ListLoadEventsResponse], error) {
	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit must not be negative"))
	}

	events, err := s.dashboardSvc.LoadEvents(ctx, req.Msg.Limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &ListLoadEventsResponse{Events: make([]LoadEvent, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, s.toLoadEvent(e))
	}
	return connect.NewResponse(resp), nil
}

func (s *ProgressServer) toLoadEvent(e domain.LoadEvent) LoadEvent {
	return LoadEvent{
		ID:          e.ID,
		Source:      e.Source,
		Status:      e.Status,
		RecordCount: e.RecordCount,
		Error:       e.Error,
		DurationMs:  e.Duration.Milliseconds(),
		LoadedAt:    e.LoadedAt,
	}
}
