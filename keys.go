package rdpfile

import "github.com/creachadair/mds/mapset"

// Well-known property keys. These are the documented settings the
// standard Windows client reads and writes; the constants are plain
// identifiers for the key strings and carry no decode or encode
// behavior of their own.
//
// Most keys hold Integer values used as booleans or small enums.
// Addresses, names, shell paths, redirection lists, winposstr and the
// monitor list are Text. password 51 is Binary: a DPAPI blob that
// only the Windows account that wrote it can decrypt.
const (
	// Session target and identity.
	KeyFullAddress          = "full address"
	KeyAlternateFullAddress = "alternate full address"
	KeyUsername             = "username"
	KeyDomain               = "domain"
	KeyPassword51           = "password 51"
	KeyAdministrativeSess   = "administrative session"
	KeyAlternateShell       = "alternate shell"
	KeyShellWorkingDir      = "shell working directory"
	KeyLoadBalanceInfo      = "loadbalanceinfo"

	// Authentication and security.
	KeyAuthenticationLevel   = "authentication level"
	KeyEnableCredSSPSupport  = "enablecredsspsupport"
	KeyNegotiateSecurity     = "negotiate security layer"
	KeyPromptForCredentials  = "prompt for credentials"
	KeyPromptCredentialOnce  = "promptcredentialonce"
	KeyUseRedirectionSrvName = "use redirection server name"

	// Remote Desktop Gateway.
	KeyGatewayHostname     = "gatewayhostname"
	KeyGatewayUsageMethod  = "gatewayusagemethod"
	KeyGatewayCredsSource  = "gatewaycredentialssource"
	KeyGatewayProfileUsage = "gatewayprofileusagemethod"

	// RemoteApp.
	KeyRemoteAppMode    = "remoteapplicationmode"
	KeyRemoteAppName    = "remoteapplicationname"
	KeyRemoteAppProgram = "remoteapplicationprogram"
	KeyRemoteAppCmdLine = "remoteapplicationcmdline"

	// Display.
	KeyScreenModeID         = "screen mode id"
	KeyUseMultimon          = "use multimon"
	KeySelectedMonitors     = "selectedmonitors"
	KeyDesktopWidth         = "desktopwidth"
	KeyDesktopHeight        = "desktopheight"
	KeySessionBPP           = "session bpp"
	KeySmartSizing          = "smart sizing"
	KeyDynamicResolution    = "dynamic resolution"
	KeyDesktopScaleFactor   = "desktopscalefactor"
	KeyDisplayConnectionBar = "displayconnectionbar"
	KeyWinPosStr            = "winposstr"

	// Audio and input.
	KeyAudioMode        = "audiomode"
	KeyAudioCaptureMode = "audiocapturemode"
	KeyAudioQualityMode = "audioqualitymode"
	KeyKeyboardHook     = "keyboardhook"

	// Device and resource redirection.
	KeyRedirectClipboard    = "redirectclipboard"
	KeyRedirectComPorts     = "redirectcomports"
	KeyRedirectPrinters     = "redirectprinters"
	KeyRedirectSmartcards   = "redirectsmartcards"
	KeyDrivesToRedirect     = "drivestoredirect"
	KeyDevicesToRedirect    = "devicestoredirect"
	KeyCamerasToRedirect    = "camerastoredirect"
	KeyUSBDevicesToRedirect = "usbdevicestoredirect"

	// Connection quality and experience.
	KeyCompression         = "compression"
	KeyConnectionType      = "connection type"
	KeyNetworkAutodetect   = "networkautodetect"
	KeyBandwidthAutodetect = "bandwidthautodetect"
	KeyVideoPlaybackMode   = "videoplaybackmode"
	KeyDisableWallpaper    = "disable wallpaper"
	KeyAllowFontSmoothing  = "allow font smoothing"
	KeyAllowComposition    = "allow desktop composition"
	KeyDisableFullWinDrag  = "disable full window drag"
	KeyDisableMenuAnims    = "disable menu anims"
	KeyDisableThemes       = "disable themes"
	KeyBitmapCache         = "bitmapcachepersistenable"

	// Reconnection.
	KeyAutoReconnect      = "autoreconnection enabled"
	KeyWorkspaceReconnect = "enableworkspacereconnect"
)

var wellKnownKeys = mapset.New(
	KeyFullAddress,
	KeyAlternateFullAddress,
	KeyUsername,
	KeyDomain,
	KeyPassword51,
	KeyAdministrativeSess,
	KeyAlternateShell,
	KeyShellWorkingDir,
	KeyLoadBalanceInfo,
	KeyAuthenticationLevel,
	KeyEnableCredSSPSupport,
	KeyNegotiateSecurity,
	KeyPromptForCredentials,
	KeyPromptCredentialOnce,
	KeyUseRedirectionSrvName,
	KeyGatewayHostname,
	KeyGatewayUsageMethod,
	KeyGatewayCredsSource,
	KeyGatewayProfileUsage,
	KeyRemoteAppMode,
	KeyRemoteAppName,
	KeyRemoteAppProgram,
	KeyRemoteAppCmdLine,
	KeyScreenModeID,
	KeyUseMultimon,
	KeySelectedMonitors,
	KeyDesktopWidth,
	KeyDesktopHeight,
	KeySessionBPP,
	KeySmartSizing,
	KeyDynamicResolution,
	KeyDesktopScaleFactor,
	KeyDisplayConnectionBar,
	KeyWinPosStr,
	KeyAudioMode,
	KeyAudioCaptureMode,
	KeyAudioQualityMode,
	KeyKeyboardHook,
	KeyRedirectClipboard,
	KeyRedirectComPorts,
	KeyRedirectPrinters,
	KeyRedirectSmartcards,
	KeyDrivesToRedirect,
	KeyDevicesToRedirect,
	KeyCamerasToRedirect,
	KeyUSBDevicesToRedirect,
	KeyCompression,
	KeyConnectionType,
	KeyNetworkAutodetect,
	KeyBandwidthAutodetect,
	KeyVideoPlaybackMode,
	KeyDisableWallpaper,
	KeyAllowFontSmoothing,
	KeyAllowComposition,
	KeyDisableFullWinDrag,
	KeyDisableMenuAnims,
	KeyDisableThemes,
	KeyBitmapCache,
	KeyAutoReconnect,
	KeyWorkspaceReconnect,
)

// WellKnown reports whether key is one of the documented client
// settings above.
func WellKnown(key string) bool { return wellKnownKeys.Has(key) }
