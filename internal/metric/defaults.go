package metric

// Planet display colors, roughly matching the icon art.
const (
	colorMercury Color = "#9E9E9E"
	colorVenus   Color = "#E6C229"
	colorEarth   Color = "#2E86C1"
	colorMoon    Color = "#BDC3C7"
	colorMars    Color = "#C0392B"
	colorJupiter Color = "#D35400"
	colorSaturn  Color = "#F1C40F"
	colorUranus  Color = "#76D7C4"
	colorNeptune Color = "#2980B9"
	colorPluto   Color = "#8E6E95"
)

const (
	colorFat      Color = "#FF7043"
	colorWater    Color = "#29B6F6"
	colorMuscle   Color = "#EF5350"
	colorBone     Color = "#ECEFF1"
	colorMeasure  Color = "#8D6E63"
	colorCalories Color = "#FFB300"
	colorNeutral  Color = "#90A4AE"
)

// DefaultTypes returns the metric-type table seeded on first start, in
// display order. Pure: no I/O, same output on every call.
//
// The ten planet rows are independent weight channels. A measurement recorded
// against one of them is its own stored value; nothing fans a single weight
// out across planets.
func DefaultTypes() []MetricType {
	planets := []struct {
		name  string
		color Color
		icon  Icon
	}{
		{"Mercury", colorMercury, IconMercury},
		{"Venus", colorVenus, IconVenus},
		{"Earth", colorEarth, IconEarth},
		{"Moon", colorMoon, IconMoon},
		{"Mars", colorMars, IconMars},
		{"Jupiter", colorJupiter, IconJupiter},
		{"Saturn", colorSaturn, IconSaturn},
		{"Uranus", colorUranus, IconUranus},
		{"Neptune", colorNeptune, IconNeptune},
		{"Pluto", colorPluto, IconPluto},
	}

	types := make([]MetricType, 0, len(planets)+21)
	for i, p := range planets {
		types = append(types, MetricType{
			Key:         KeyWeight,
			DisplayName: p.name,
			Unit:        UnitMass,
			Color:       p.color,
			Icon:        p.icon,
			Input:       InputNumeric,
			Order:       i,
			Pinned:      true,
			Enabled:     true,
		})
	}

	// Legacy channels inherited from the upstream scale tracker, disabled by
	// default. Order continues after the planet block.
	legacy := []MetricType{
		{Key: KeyBMI, Unit: UnitNone, Color: colorNeutral, Icon: IconScale, Input: InputNumeric, Derived: true, RightAxis: true},
		{Key: KeyBodyFat, Unit: UnitPercent, Color: colorFat, Icon: IconFat, Input: InputNumeric},
		{Key: KeyWater, Unit: UnitPercent, Color: colorWater, Icon: IconWater, Input: InputNumeric},
		{Key: KeyMuscle, Unit: UnitPercent, Color: colorMuscle, Icon: IconMuscle, Input: InputNumeric},
		{Key: KeyLBM, Unit: UnitMass, Color: colorNeutral, Icon: IconScale, Input: InputNumeric, Derived: true},
		{Key: KeyBoneMass, Unit: UnitMass, Color: colorBone, Icon: IconBone, Input: InputNumeric},
		{Key: KeyWaist, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyWHtR, Unit: UnitNone, Color: colorNeutral, Icon: IconMeasure, Input: InputNumeric, Derived: true, RightAxis: true},
		{Key: KeyHip, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyWHR, Unit: UnitNone, Color: colorNeutral, Icon: IconMeasure, Input: InputNumeric, Derived: true, RightAxis: true},
		{Key: KeyVisceralFat, Unit: UnitCount, Color: colorFat, Icon: IconFat, Input: InputNumeric},
		{Key: KeyChest, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyThigh, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyBiceps, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyNeck, Unit: UnitLength, Color: colorMeasure, Icon: IconMeasure, Input: InputNumeric},
		{Key: KeyCaliper1, Unit: UnitLength, Color: colorMeasure, Icon: IconCaliper, Input: InputNumeric},
		{Key: KeyCaliper2, Unit: UnitLength, Color: colorMeasure, Icon: IconCaliper, Input: InputNumeric},
		{Key: KeyCaliper3, Unit: UnitLength, Color: colorMeasure, Icon: IconCaliper, Input: InputNumeric},
		{Key: KeyCaliperFat, Unit: UnitPercent, Color: colorFat, Icon: IconCaliper, Input: InputNumeric, Derived: true},
		{Key: KeyCalories, Unit: UnitCalories, Color: colorCalories, Icon: IconCalories, Input: InputNumeric},
		{Key: KeyComment, Unit: UnitNone, Color: colorNeutral, Icon: IconComment, Input: InputText},
	}
	for i := range legacy {
		legacy[i].Order = len(planets) + i
	}

	return append(types, legacy...)
}
