package utils

import (
	"net/http"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"strconv"
)

func BuildFindAvailableSlotsRequest(r *http.Request) *requests.FindAvailableSlotsRequest {
	request := &requests.FindAvailableSlotsRequest{
		Day: r.URL.Query().Get(constvars.QueryParamDay),
	}
	SanitizeFindAvailableSlotsRequest(request)
	return request
}

// BuildLoadClusteringRequest falls back to the defaults for absent params; malformed ones are reported.
func BuildLoadClusteringRequest(r *http.Request, defaultSeed int64, defaultCount int) (*requests.LoadClusteringRequest, string, error) {
	request := &requests.LoadClusteringRequest{
		Seed:  defaultSeed,
		Count: defaultCount,
	}

	if raw := r.URL.Query().Get(constvars.QueryParamSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, constvars.QueryParamSeed, err
		}
		request.Seed = seed
	}

	if raw := r.URL.Query().Get(constvars.QueryParamCount); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, constvars.QueryParamCount, err
		}
		request.Count = count
	}

	return request, "", nil
}
