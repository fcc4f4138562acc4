package metric

// Key identifies the semantic channel a metric type tracks. Keys are not
// unique across the metric-type table: the planet channels all share KeyWeight
// and differ only in display name, color, and icon.
type Key string

const (
	KeyWeight      Key = "weight"
	KeyBMI         Key = "bmi"
	KeyBodyFat     Key = "body_fat"
	KeyWater       Key = "water"
	KeyMuscle      Key = "muscle"
	KeyLBM         Key = "lbm"
	KeyBoneMass    Key = "bone_mass"
	KeyWaist       Key = "waist"
	KeyWHtR        Key = "whtr"
	KeyHip         Key = "hip"
	KeyWHR         Key = "whr"
	KeyVisceralFat Key = "visceral_fat"
	KeyChest       Key = "chest"
	KeyThigh       Key = "thigh"
	KeyBiceps      Key = "biceps"
	KeyNeck        Key = "neck"
	KeyCaliper1    Key = "caliper1"
	KeyCaliper2    Key = "caliper2"
	KeyCaliper3    Key = "caliper3"
	KeyCaliperFat  Key = "caliper_fat"
	KeyCalories    Key = "calories"
	KeyComment     Key = "comment"
)

// Unit is the measurement unit family of a channel. Conversion between
// concrete units (kg/lb, cm/in) is a display concern and lives elsewhere.
type Unit string

const (
	UnitMass     Unit = "mass"
	UnitPercent  Unit = "percent"
	UnitLength   Unit = "length"
	UnitCount    Unit = "count"
	UnitCalories Unit = "calories"
	UnitNone     Unit = "none"
)

// Input is how a value of this type is entered and rendered.
type Input string

const (
	InputNumeric Input = "numeric"
	InputText    Input = "text"
	InputDate    Input = "date"
	InputTime    Input = "time"
	InputUser    Input = "user"
)

// Icon references an icon asset by name. Opaque to everything but the UI.
type Icon string

const (
	IconMercury Icon = "planet_mercury"
	IconVenus   Icon = "planet_venus"
	IconEarth   Icon = "planet_earth"
	IconMoon    Icon = "planet_moon"
	IconMars    Icon = "planet_mars"
	IconJupiter Icon = "planet_jupiter"
	IconSaturn  Icon = "planet_saturn"
	IconUranus  Icon = "planet_uranus"
	IconNeptune Icon = "planet_neptune"
	IconPluto   Icon = "planet_pluto"

	IconScale    Icon = "scale"
	IconFat      Icon = "fat"
	IconWater    Icon = "water"
	IconMuscle   Icon = "muscle"
	IconBone     Icon = "bone"
	IconMeasure  Icon = "measure"
	IconCaliper  Icon = "caliper"
	IconCalories Icon = "calories"
	IconComment  Icon = "comment"
)

// Color is a display color in #RRGGBB form, opaque to the core.
type Color string

// MetricType describes one trackable channel: what it is, how it is
// displayed, and how values are entered.
type MetricType struct {
	ID          int64  `json:"id"`
	Key         Key    `json:"key"`
	DisplayName string `json:"display_name,omitempty"` // empty means use the key's default label
	Unit        Unit   `json:"unit"`
	Color       Color  `json:"color"`
	Icon        Icon   `json:"icon"`
	Input       Input  `json:"input"`
	Order       int    `json:"order"`
	Derived     bool   `json:"derived"`
	Pinned      bool   `json:"pinned"`
	Enabled     bool   `json:"enabled"`
	RightAxis   bool   `json:"right_axis"`
}
