package bridge

import "github.com/uwbcore/uwb-go/pkg/version"

// Host classes constructed by the encoders.
const (
	ClassMulticastListUpdateStatus = "uwb/MulticastListUpdateStatus"
	ClassRangingData               = "uwb/RangingData"
	ClassTwoWayMeasurement         = "uwb/TwoWayMeasurement"
	ClassOwrAoaMeasurement         = "uwb/OwrAoaMeasurement"
	ClassDlTdoaMeasurement         = "uwb/DlTdoaMeasurement"
)

// Host callbacks, by method name.
const (
	MethodDeviceStatus        = "OnDeviceStatusNotificationReceived"
	MethodCoreGenericError    = "OnCoreGenericErrorNotificationReceived"
	MethodSessionStatus       = "OnSessionStatusNotificationReceived"
	MethodMulticastListUpdate = "OnMulticastListUpdateNotificationReceived"
	MethodRangeData           = "OnRangeDataNotificationReceived"
	MethodVendorNotification  = "OnVendorUciNotificationReceived"
	MethodDataReceived        = "OnDataReceived"
)

// Callback descriptors.
const (
	// state, chip id
	SigDeviceStatus = "(ILjava/lang/String;)V"
	// status, chip id
	SigCoreGenericError = "(ILjava/lang/String;)V"
	// session id, state, reason
	SigSessionStatus       = "(JII)V"
	SigMulticastListUpdate = "(L" + ClassMulticastListUpdateStatus + ";)V"
	SigRangeData           = "(L" + ClassRangingData + ";)V"
	// gid, oid, payload
	SigVendorNotification = "(II[B)V"
	// session id, status, sequence, source address, source endpoint,
	// destination endpoint, payload
	SigDataReceived = "(JIJ[BII[B)V"
)

// Constructor descriptors.
const (
	// session id, remaining list size, count, addresses, sub-session ids,
	// statuses
	CtorMulticastListUpdateStatus = "(JII[I[J[I)V"

	// sequence, session id, rcr indicator, interval, measurement type,
	// address indicator, count, measurements, raw payload
	CtorRangingDataTwoWay = "(JJIJIII[L" + ClassTwoWayMeasurement + ";[B)V"
	CtorRangingDataDlTdoa = "(JJIJIII[L" + ClassDlTdoaMeasurement + ";[B)V"
	CtorRangingDataOwrAoa = "(JJIJIIIL" + ClassOwrAoaMeasurement + ";[B)V"

	CtorTwoWayMeasurement = "([BIIIIIIIIIIIII)V"
	CtorOwrAoaMeasurement = "([BIIIIIIII)V"
	CtorDlTdoaMeasurement = "([BIIIIIIIIIIIJJIIJJI[B[B)V"
)

// Layout describes the callbacks and constructors the encoders use, for
// validation against a version.LayoutManifest.
func Layout() version.HostLayout {
	return version.HostLayout{
		Methods: map[string]string{
			MethodDeviceStatus:        SigDeviceStatus,
			MethodCoreGenericError:    SigCoreGenericError,
			MethodSessionStatus:       SigSessionStatus,
			MethodMulticastListUpdate: SigMulticastListUpdate,
			MethodRangeData:           SigRangeData,
			MethodVendorNotification:  SigVendorNotification,
			MethodDataReceived:        SigDataReceived,
		},
		Classes: map[string][]string{
			ClassMulticastListUpdateStatus: {CtorMulticastListUpdateStatus},
			ClassRangingData:               {CtorRangingDataTwoWay, CtorRangingDataDlTdoa, CtorRangingDataOwrAoa},
			ClassTwoWayMeasurement:         {CtorTwoWayMeasurement},
			ClassOwrAoaMeasurement:         {CtorOwrAoaMeasurement},
			ClassDlTdoaMeasurement:         {CtorDlTdoaMeasurement},
		},
	}
}
