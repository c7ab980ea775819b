// Package models defines server-side data models persisted in the database.
package models

import "time"

// Project is a single portfolio entry. DisplayOrder is a dense ranking among
// all projects: at any point the set of values is a permutation of 1..N,
// maintained by the create and reorder logic rather than by a constraint.
type Project struct {
	ID           int64
	Date         time.Time
	Title        string
	Description  string
	DisplayOrder int
}

// URLType is one entry of the closed url-type vocabulary
// ("Deployed Url", "Video", "Frontend Repo", "Backend Repo").
type URLType struct {
	ID    int64
	Label string
}

// ProjectURL is one (project, url-type) link. A project carries at most one
// URL per type, and exactly one "Deployed Url" entry whenever URLs are
// supplied at all.
type ProjectURL struct {
	ID        int64
	ProjectID int64
	TypeLabel string
	URL       string
}

// Photo references an object-storage file by its opaque key. DisplayOrder is
// unique within a project; a project has 1..4 photos.
type Photo struct {
	ID           int64
	ProjectID    int64
	PhotoURL     string
	DisplayOrder int
}

// ProjectSummary is the listing view: the first photo, the description, and
// the deployed URL.
type ProjectSummary struct {
	ID           int64
	Title        string
	Description  string
	PhotoURL     string
	DeployedURL  string
	DisplayOrder int
}

// ProjectDetails is the full view of one project.
type ProjectDetails struct {
	Project Project
	URLs    []*ProjectURL
	Photos  []*Photo
}
