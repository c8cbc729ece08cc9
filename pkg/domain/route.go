package domain

// Route identifies the backend selected for a query
type Route string

const (
	// RouteSearch routes a query to the document search backend
	RouteSearch Route = "vertex_search"

	// RouteAgent routes a query to the reasoning agent backend
	RouteAgent Route = "deep_agent"
)

// String returns the wire name of the route
func (r Route) String() string {
	return string(r)
}
