package report

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is an open mapping for the loosely-typed report sections. Their
// shape varies per report, so values are kept as primitives or arrays of
// primitives rather than a fixed schema.
type Section map[string]interface{}

type ForecastPoint struct {
	Year  string  `json:"year" bson:"year"`
	Value float64 `json:"value" bson:"value"`
}

type RegionPoint struct {
	Region string  `json:"region" bson:"region"`
	Value  float64 `json:"value" bson:"value"`
}

type SharePoint struct {
	Name  string  `json:"name" bson:"name"`
	Value float64 `json:"value" bson:"value"`
	Color string  `json:"color,omitempty" bson:"color,omitempty"`
}

type SentimentPoint struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}

type RegionalAnalysis struct {
	Region       string `json:"region" bson:"region"`
	Description  string `json:"description" bson:"description"`
	SharePercent string `json:"sharePercent" bson:"sharePercent"`
	CAGR         string `json:"cagr" bson:"cagr"`
}

// Report is a market-research report document. reportId and slug are
// immutable after creation; slug is unique across the collection.
type Report struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReportID string             `json:"reportId" bson:"reportId"`
	Slug     string             `json:"slug" bson:"slug"`

	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`

	Publisher string `json:"publisher" bson:"publisher"`
	Industry  string `json:"industry" bson:"industry"`
	Segment   string `json:"segment" bson:"segment"`

	Timeframe            Section            `json:"timeframe,omitempty" bson:"timeframe,omitempty"`
	MarketOverview       Section            `json:"marketOverview,omitempty" bson:"marketOverview,omitempty"`
	ReportScope          string             `json:"reportScope,omitempty" bson:"reportScope,omitempty"`
	Segmentation         Section            `json:"segmentation,omitempty" bson:"segmentation,omitempty"`
	MarketDynamics       Section            `json:"marketDynamics,omitempty" bson:"marketDynamics,omitempty"`
	RegionalAnalysis     []RegionalAnalysis `json:"regionalAnalysis,omitempty" bson:"regionalAnalysis,omitempty"`
	CompetitiveLandscape Section            `json:"competitiveLandscape,omitempty" bson:"competitiveLandscape,omitempty"`
	ResearchMethodology  Section            `json:"researchMethodology,omitempty" bson:"researchMethodology,omitempty"`
	Metadata             Section            `json:"metadata,omitempty" bson:"metadata,omitempty"`

	Price    float64 `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Pages    int     `json:"pages,omitempty" bson:"pages,omitempty"`
	Format   string  `json:"format,omitempty" bson:"format,omitempty"`

	ForecastData        []ForecastPoint  `json:"forecastData,omitempty" bson:"forecastData,omitempty"`
	RevenueByRegionData []RegionPoint    `json:"revenueByRegionData,omitempty" bson:"revenueByRegionData,omitempty"`
	SegmentShareData    []SharePoint     `json:"segmentShareData,omitempty" bson:"segmentShareData,omitempty"`
	SentimentData       []SentimentPoint `json:"sentimentData,omitempty" bson:"sentimentData,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
