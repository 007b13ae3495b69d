package gustg1t

import "fmt"

// Platform identifies the target hardware a G1T container was built for.
type Platform uint32

const (
	PlayStation2    Platform = 0x00
	PlayStation3    Platform = 0x01
	Xbox360         Platform = 0x02
	Wii             Platform = 0x03
	NintendoDS      Platform = 0x04
	Nintendo3DS     Platform = 0x05
	PlayStationVita Platform = 0x06
	Android         Platform = 0x07
	IOS             Platform = 0x08
	WiiU            Platform = 0x09
	Windows         Platform = 0x0A
	PlayStation4    Platform = 0x0B
	XboxOne         Platform = 0x0C
	// 0x0D-0x0F are unused.
	Switch Platform = 0x10
)

func (p Platform) String() string {
	switch p {
	case PlayStation2:
		return "PlayStation2"
	case PlayStation3:
		return "PlayStation3"
	case Xbox360:
		return "Xbox360"
	case Wii:
		return "Wii"
	case NintendoDS:
		return "NintendoDS"
	case Nintendo3DS:
		return "Nintendo3DS"
	case PlayStationVita:
		return "PlayStationVita"
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	case WiiU:
		return "WiiU"
	case Windows:
		return "Windows"
	case PlayStation4:
		return "PlayStation4"
	case XboxOne:
		return "XboxOne"
	case Switch:
		return "Switch"
	default:
		return fmt.Sprintf("Platform(0x%02x)", uint32(p))
	}
}

// platformFromCode validates a raw platform code against the enumerated set.
func platformFromCode(code uint32) (Platform, bool) {
	switch Platform(code) {
	case PlayStation2, PlayStation3, Xbox360, Wii, NintendoDS, Nintendo3DS,
		PlayStationVita, Android, IOS, WiiU, Windows, PlayStation4, XboxOne, Switch:
		return Platform(code), true
	default:
		return 0, false
	}
}
