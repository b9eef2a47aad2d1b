package api

// LegacyPartID is a body-part identifier from the original inspection form
//
// may be one of: front_bumper, rear_bumper, hood, roof, trunk, front_left_door, front_right_door, rear_left_door,
// rear_right_door, left_fender, right_fender, left_quarter_panel, right_quarter_panel
//
// swagger:model
type LegacyPartID string

const (
	LegacyPartFrontBumper       = LegacyPartID("front_bumper")
	LegacyPartRearBumper        = LegacyPartID("rear_bumper")
	LegacyPartHood              = LegacyPartID("hood")
	LegacyPartRoof              = LegacyPartID("roof")
	LegacyPartTrunk             = LegacyPartID("trunk")
	LegacyPartFrontLeftDoor     = LegacyPartID("front_left_door")
	LegacyPartFrontRightDoor    = LegacyPartID("front_right_door")
	LegacyPartRearLeftDoor      = LegacyPartID("rear_left_door")
	LegacyPartRearRightDoor     = LegacyPartID("rear_right_door")
	LegacyPartLeftFender        = LegacyPartID("left_fender")
	LegacyPartRightFender       = LegacyPartID("right_fender")
	LegacyPartLeftQuarterPanel  = LegacyPartID("left_quarter_panel")
	LegacyPartRightQuarterPanel = LegacyPartID("right_quarter_panel")
)

func (l LegacyPartID) String() string {
	return string(l)
}

// PartKey identifies a part in the detailed damage catalog. Keys outside the catalog are allowed and are carried
// through reconciliation with whatever overlay data exists for them.
//
// swagger:model
type PartKey string

const (
	PartKeyFrontBumper           = PartKey("front_bumper")
	PartKeyRearBumper            = PartKey("rear_bumper")
	PartKeyHood                  = PartKey("hood")
	PartKeyRoof                  = PartKey("roof")
	PartKeyTrunk                 = PartKey("trunk")
	PartKeyDoorFrontLeft         = PartKey("door_front_left")
	PartKeyDoorFrontRight        = PartKey("door_front_right")
	PartKeyDoorRearLeft          = PartKey("door_rear_left")
	PartKeyDoorRearRight         = PartKey("door_rear_right")
	PartKeyFenderFrontLeft       = PartKey("fender_front_left")
	PartKeyFenderFrontRight      = PartKey("fender_front_right")
	PartKeyQuarterPanelRearLeft  = PartKey("quarter_panel_rear_left")
	PartKeyQuarterPanelRearRight = PartKey("quarter_panel_rear_right")

	PartKeyWheelFrontLeft  = PartKey("wheel_front_left")
	PartKeyWheelFrontRight = PartKey("wheel_front_right")
	PartKeyWheelRearLeft   = PartKey("wheel_rear_left")
	PartKeyWheelRearRight  = PartKey("wheel_rear_right")

	PartKeyHeadlightLeft    = PartKey("headlight_left")
	PartKeyHeadlightRight   = PartKey("headlight_right")
	PartKeyTaillightLeft    = PartKey("taillight_left")
	PartKeyTaillightRight   = PartKey("taillight_right")
	PartKeyWindshieldFront  = PartKey("windshield_front")
	PartKeyWindshieldRear   = PartKey("windshield_rear")
	PartKeyWindowFrontLeft  = PartKey("window_front_left")
	PartKeyWindowFrontRight = PartKey("window_front_right")
	PartKeyWindowRearLeft   = PartKey("window_rear_left")
	PartKeyWindowRearRight  = PartKey("window_rear_right")
	PartKeyMirrorLeft       = PartKey("mirror_left")
	PartKeyMirrorRight      = PartKey("mirror_right")
)

func (p PartKey) String() string {
	return string(p)
}

// WheelPartKeyPrefix is the naming convention shared by every wheel/tire part-key
const WheelPartKeyPrefix = "wheel_"

// PartCategory groups catalog parts by kind
//
// may be one of: panel, wheel, light, glass, mirror, other
//
// swagger:model
type PartCategory string

const (
	PartCategoryPanel  = PartCategory("panel")
	PartCategoryWheel  = PartCategory("wheel")
	PartCategoryLight  = PartCategory("light")
	PartCategoryGlass  = PartCategory("glass")
	PartCategoryMirror = PartCategory("mirror")
	PartCategoryOther  = PartCategory("other")
)

// DiagramView is the side of the vehicle diagram on which a part is drawn
//
// may be one of: front, rear, left, right, top
//
// swagger:model
type DiagramView string

const (
	DiagramViewFront = DiagramView("front")
	DiagramViewRear  = DiagramView("rear")
	DiagramViewLeft  = DiagramView("left")
	DiagramViewRight = DiagramView("right")
	DiagramViewTop   = DiagramView("top")
)

// TirePosition is a wheel position in the mechanical tire record
//
// may be one of: front_left, front_right, rear_left, rear_right, spare
//
// swagger:model
type TirePosition string

const (
	TirePositionFrontLeft  = TirePosition("front_left")
	TirePositionFrontRight = TirePosition("front_right")
	TirePositionRearLeft   = TirePosition("rear_left")
	TirePositionRearRight  = TirePosition("rear_right")
	TirePositionSpare      = TirePosition("spare")
)

func (t TirePosition) String() string {
	return string(t)
}

// BodyType
//
// may be one of: sedan, hatchback, suv, coupe, pickup, van, other
//
// swagger:model
type BodyType string

const (
	BodyTypeSedan     = BodyType("sedan")
	BodyTypeHatchback = BodyType("hatchback")
	BodyTypeSUV       = BodyType("suv")
	BodyTypeCoupe     = BodyType("coupe")
	BodyTypePickup    = BodyType("pickup")
	BodyTypeVan       = BodyType("van")
	BodyTypeOther     = BodyType("other")
)
