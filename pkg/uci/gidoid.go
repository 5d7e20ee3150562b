package uci

// UCI group identifiers.
const (
	GroupCore           uint8 = 0x00
	GroupSessionConfig  uint8 = 0x01
	GroupSessionControl uint8 = 0x02
	GroupDataControl    uint8 = 0x03
	GroupAndroid        uint8 = 0x0C
)

// Core group opcodes.
const (
	OidCoreDeviceReset   uint8 = 0x00
	OidCoreDeviceStatus  uint8 = 0x01
	OidCoreGetDeviceInfo uint8 = 0x02
	OidCoreGetCapsInfo   uint8 = 0x03
	OidCoreGenericError  uint8 = 0x07
)

// Session config group opcodes.
const (
	OidSessionInit                    uint8 = 0x00
	OidSessionDeinit                  uint8 = 0x01
	OidSessionStatus                  uint8 = 0x02
	OidSessionSetAppConfig            uint8 = 0x03
	OidSessionGetAppConfig            uint8 = 0x04
	OidSessionGetCount                uint8 = 0x05
	OidSessionGetState                uint8 = 0x06
	OidSessionUpdateMulticastList     uint8 = 0x07
	OidSessionUpdateActiveRoundsDtTag uint8 = 0x09
)

// Session control group opcodes.
const (
	OidRangeStart         uint8 = 0x00
	OidRangeStop          uint8 = 0x01
	OidDataCredit         uint8 = 0x04
	OidDataTransferStatus uint8 = 0x05
)

// OidRangeData shares its opcode with OidRangeStart; it is only ever sent
// as a notification.
const OidRangeData = OidRangeStart

// Android group opcodes.
const (
	OidAndroidGetPowerStats  uint8 = 0x00
	OidAndroidSetCountryCode uint8 = 0x01
)
