package orm

type sqlBusinessUnit struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Focus     string
	Potential int
	Strategy  string
}

type sqlBusinessUnitRegion struct {
	BusinessUnitID int `gorm:"primaryKey"`
	Position       int `gorm:"primaryKey"`
	Region         string
}

type sqlRegion struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Latitude  float64
	Longitude float64
}

type sqlRecommendation struct {
	ID   int `gorm:"primaryKey"`
	Text string
}

var tables = []any{
	&sqlBusinessUnit{},
	&sqlBusinessUnitRegion{},
	&sqlRegion{},
	&sqlRecommendation{},
}
