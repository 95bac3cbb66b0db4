package models

// Table names
const (
	RecordsTable     = "catalog_records"
	MembershipsTable = "category_memberships"
)

// CatalogRecord is the local mirror of one upstream catalog entry.
// ID is the upstream identity and is never generated locally.
type CatalogRecord struct {
	ID                     int                  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name                   string               `gorm:"column:name;type:varchar(255);not null" json:"name"`
	BaseExperience         *int                 `gorm:"column:base_experience" json:"base_experience"`
	Height                 *int                 `gorm:"column:height" json:"height"`
	Order                  *int                 `gorm:"column:order" json:"order"`
	Weight                 *int                 `gorm:"column:weight" json:"weight"`
	LocationAreaEncounters *string              `gorm:"column:location_area_encounters;type:text" json:"location_area_encounters"`
	Categories             []CategoryMembership `gorm:"-" json:"categories"`
}

// TableName overrides the default table name.
func (CatalogRecord) TableName() string {
	return RecordsTable
}

// CategoryMembership links a record to one category. The set of memberships of a
// record always equals the categories of its latest reconciled payload.
type CategoryMembership struct {
	RecordID     int    `gorm:"column:record_id;primaryKey;autoIncrement:false" json:"-"`
	CategoryName string `gorm:"column:category_name;primaryKey;type:varchar(100)" json:"name"`
	CategoryURL  string `gorm:"column:category_url;type:text;not null" json:"url"`

	Record *CatalogRecord `gorm:"foreignKey:RecordID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the default table name.
func (CategoryMembership) TableName() string {
	return MembershipsTable
}

// MutableColumns lists the record columns overwritten on upsert.
// The primary key is excluded.
var MutableColumns = []string{
	"name",
	"base_experience",
	"height",
	"order",
	"weight",
	"location_area_encounters",
}

// ExpectedColumns returns the columns each table must carry.
func ExpectedColumns() map[string][]string {
	return map[string][]string{
		RecordsTable:     append([]string{"id"}, MutableColumns...),
		MembershipsTable: {"record_id", "category_name", "category_url"},
	}
}
