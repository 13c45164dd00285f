package constants

const (
	DEFAULT_RUNS_LIMIT        = 20
	MAX_RUNS_LIMIT            = 100
	MAX_CARS_PER_PAGE         = 100
	CAR_DETAIL_LISTINGS_LIMIT = 10
)
