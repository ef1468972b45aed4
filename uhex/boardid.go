package uhex

// BoardID is a micro:bit hardware revision identifier, as carried in a
// Universal Hex BlockStart record.
type BoardID uint16

// V1 board IDs use plain Data records inside a Universal Hex fragment,
// since the V1 bootloader has no concept of CustomData and would otherwise
// try to flash every board's data onto itself.
const (
	BoardIDV1A BoardID = 0x9900
	BoardIDV1B BoardID = 0x9901
)

// IsV1 reports whether id is one of the recognized V1 board IDs.
func (id BoardID) IsV1() bool {
	return id == BoardIDV1A || id == BoardIDV1B
}

func isV1(boardID uint16) bool {
	return BoardID(boardID).IsV1()
}
