package models

// LoadPoint is one historical visit used for load analysis.
type LoadPoint struct {
	Hour int `json:"hour"`
	Day  int `json:"day"`
}

type ClusteredPoint struct {
	LoadPoint
	Cluster int `json:"cluster"`
}

type ClusterSummary struct {
	Label      int     `json:"label"`
	CenterHour float64 `json:"center_hour"`
	CenterDay  float64 `json:"center_day"`
	Size       int     `json:"size"`
}

// LoadClustering is the result of grouping a load sample.
type LoadClustering struct {
	Seed     int64            `json:"seed"`
	Count    int              `json:"count"`
	K        int              `json:"k"`
	Points   []ClusteredPoint `json:"points"`
	Clusters []ClusterSummary `json:"clusters"`
}
