package fingerprint

// OS identifies the operating system a profile claims to run on. Device is
// only set for mobile records.
type OS struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Device  string `json:"device,omitempty" yaml:"device,omitempty"`
}

// OS family names used by the catalogs and the user-agent templates.
const (
	OSWindows   = "Windows"
	OSMacintosh = "Macintosh"
	OSLinux     = "Linux"
	OSAndroid   = "Android"
	OSIOS       = "iOS"
)

// --- operating systems ---

var desktopOSes = []OS{
	{Name: OSWindows, Version: "10.0"},
	{Name: OSWindows, Version: "11.0"},
	{Name: OSWindows, Version: "7.0"},
	{Name: OSWindows, Version: "8.1"},
	{Name: OSWindows, Version: "XP"},
	{Name: OSWindows, Version: "2003"},
	{Name: OSWindows, Version: "2008"},
	{Name: OSWindows, Version: "2012"},
	{Name: OSWindows, Version: "2016"},
	{Name: OSWindows, Version: "2019"},
	{Name: OSWindows, Version: "2022"},
	{Name: OSMacintosh, Version: "10.15.7"},
	{Name: OSMacintosh, Version: "11.6.8"},
	{Name: OSMacintosh, Version: "12.4"},
	{Name: OSMacintosh, Version: "13.2"},
	{Name: OSMacintosh, Version: "10.14.6"},
	{Name: OSMacintosh, Version: "10.13.6"},
	{Name: OSMacintosh, Version: "10.12.6"},
	{Name: OSMacintosh, Version: "10.11.6"},
	{Name: OSMacintosh, Version: "10.10.5"},
	{Name: OSLinux, Version: "x86_64"},
	{Name: OSLinux, Version: "arm64"},
	{Name: OSLinux, Version: "i386"},
	{Name: OSLinux, Version: "aarch64"},
	{Name: OSLinux, Version: "ppc64le"},
	{Name: OSLinux, Version: "s390x"},
	{Name: OSLinux, Version: "armv7l"},
	{Name: OSLinux, Version: "mips64"},
	{Name: OSLinux, Version: "mips"},
	{Name: OSLinux, Version: "sparc64"},
	{Name: OSLinux, Version: "riscv64"},
}

var mobileOSes = []OS{
	{Name: OSAndroid, Version: "10", Device: "SM-G970F"},
	{Name: OSAndroid, Version: "11", Device: "SM-G991B"},
	{Name: OSAndroid, Version: "12", Device: "Pixel 6"},
	{Name: OSAndroid, Version: "13", Device: "Pixel 7"},
	{Name: OSAndroid, Version: "14", Device: "SM-S918B"},
	{Name: OSAndroid, Version: "15", Device: "SM-F946U"},
	{Name: OSAndroid, Version: "5", Device: "SM-G925F"},
	{Name: OSAndroid, Version: "4", Device: "SM-G910F"},
	{Name: OSAndroid, Version: "3", Device: "SM-G710F"},
	{Name: OSAndroid, Version: "2", Device: "SM-G610F"},
	{Name: OSIOS, Version: "15.4", Device: "iPhone13,1"},
	{Name: OSIOS, Version: "16.3", Device: "iPhone14,7"},
	{Name: OSIOS, Version: "17.0", Device: "iPhone15,4"},
	{Name: OSIOS, Version: "18.0", Device: "iPhone16,1"},
	{Name: OSIOS, Version: "10.0", Device: "iPhone9,1"},
	{Name: OSIOS, Version: "9.0", Device: "iPhone8,1"},
	{Name: OSIOS, Version: "8.0", Device: "iPhone7,2"},
	{Name: OSIOS, Version: "7.0", Device: "iPhone6,1"},
	{Name: OSIOS, Version: "6.0", Device: "iPhone5,1"},
	{Name: OSIOS, Version: "5.0", Device: "iPhone4,1"},
}

// windowsNT maps catalog Windows versions to the NT kernel token browsers
// report. Versions missing here are written verbatim.
var windowsNT = map[string]string{
	"XP":   "5.1",
	"2003": "5.2",
	"2008": "6.0",
	"7.0":  "6.1",
	"2012": "6.2",
	"8.1":  "6.3",
	"10.0": "10.0",
	"11.0": "10.0",
	"2016": "10.0",
	"2019": "10.0",
	"2022": "10.0",
}

// --- browser versions ---

var chromeVersions = []string{
	"110.0.5481.178",
	"111.0.5563.147",
	"112.0.5615.138",
	"113.0.5672.127",
	"114.0.5735.199",
	"115.0.5790.171",
	"116.0.5845.187",
	"117.0.5938.132",
	"118.0.5993.88",
	"119.0.6045.106",
	"120.0.6099.129",
	"121.0.6167.139",
	"122.0.6261.69",
	"123.0.6312.86",
	"124.0.6367.62",
	"125.0.6422.76",
	"126.0.6478.55",
	"127.0.6539.110",
	"128.0.6597.150",
	"129.0.6655.200",
	"130.0.6723.100",
	"131.0.6781.150",
	"132.0.6839.200",
	"133.0.6897.250",
	"134.0.6955.300",
	"135.0.7013.350",
	"136.0.7071.400",
}

var edgeVersions = []string{
	"110.0.1587.69",
	"111.0.1661.54",
	"112.0.1722.64",
	"113.0.1774.57",
	"114.0.1823.67",
	"115.0.1901.188",
	"116.0.1938.69",
	"117.0.2045.47",
	"118.0.2088.69",
	"119.0.2151.58",
	"120.0.2210.89",
	"121.0.2277.98",
	"122.0.2365.59",
	"123.0.2420.53",
	"124.0.2478.49",
	"125.0.2535.33",
	"126.0.2592.20",
	"127.0.2653.75",
	"128.0.2705.100",
	"129.0.2757.150",
}

// --- screen ---

var (
	desktopWidths  = []int{1366, 1440, 1536, 1600, 1920, 2560}
	desktopHeights = []int{768, 900, 864, 1024, 1080, 1440}
	mobileWidths   = []int{360, 375, 390, 414, 428}
	mobileHeights  = []int{640, 720, 780, 844, 926}
)

var colorDepths = []int{24, 30, 32}

// --- hardware ---

var (
	desktopMemories      = []int{2, 4, 8, 16}
	mobileMemories       = []int{2, 4, 8}
	desktopConcurrencies = []int{2, 4, 6, 8, 12, 16}
	mobileConcurrencies  = []int{2, 4, 6, 8}
)

// --- locale ---

// timezoneOffsets are UTC offsets in minutes, east positive.
var timezoneOffsets = []int{-480, -420, -360, -300, -240, -180, 0, 60, 120, 180, 240, 300, 360, 480, 540}

var doNotTrackStates = []DoNotTrack{DoNotTrackEnabled, DoNotTrackDisabled, DoNotTrackUnset}

var languages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"zh-CN,zh;q=0.9,en;q=0.8",
	"ja-JP,ja;q=0.9,en;q=0.8",
	"es-ES,es;q=0.9,en;q=0.8",
	"fr-FR,fr;q=0.9,en;q=0.8",
	"de-DE,de;q=0.9,en;q=0.8",
	"ru-RU,ru;q=0.9,en;q=0.8",
	"pt-BR,pt;q=0.9,en;q=0.8",
	"it-IT,it;q=0.9,en;q=0.8",
	"ko-KR,ko;q=0.9,en;q=0.8",
	"nl-NL,nl;q=0.9,en;q=0.8",
	"sv-SE,sv;q=0.9,en;q=0.8",
	"pl-PL,pl;q=0.9,en;q=0.8",
	"tr-TR,tr;q=0.9,en;q=0.8",
	"ar-SA,ar;q=0.9,en;q=0.8",
	"he-IL,he;q=0.9,en;q=0.8",
	"el-GR,el;q=0.9,en;q=0.8",
	"hu-HU,hu;q=0.9,en;q=0.8",
	"ro-RO,ro;q=0.9,en;q=0.8",
	"bg-BG,bg;q=0.9,en;q=0.8",
	"cs-CZ,cs;q=0.9,en;q=0.8",
	"sk-SK,sk;q=0.9,en;q=0.8",
	"th-TH,th;q=0.9,en;q=0.8",
	"vi-VN,vi;q=0.9,en;q=0.8",
	"uk-UA,uk;q=0.9,en;q=0.8",
	"hr-HR,hr;q=0.9,en;q=0.8",
	"sr-RS,sr;q=0.9,en;q=0.8",
	"ms-MY,ms;q=0.9,en;q=0.8",
	"id-ID,id;q=0.9,en;q=0.8",
	"fi-FI,fi;q=0.9,en;q=0.8",
	"da-DK,da;q=0.9,en;q=0.8",
	"no-NO,no;q=0.9,en;q=0.8",
	"nl-BE,nl;q=0.9,en;q=0.8",
	"fr-BE,fr;q=0.9,en;q=0.8",
	"de-BE,de;q=0.9,en;q=0.8",
	"it-CH,it;q=0.9,en;q=0.8",
	"fr-CH,fr;q=0.9,en;q=0.8",
	"de-CH,de;q=0.9,en;q=0.8",
	"pt-PT,pt;q=0.9,en;q=0.8",
	"zh-TW,zh;q=0.9,en;q=0.8",
	"zh-HK,zh;q=0.9,en;q=0.8",
	"fa-IR,fa;q=0.9,en;q=0.8",
	"et-EE,et;q=0.9,en;q=0.8",
	"lv-LV,lv;q=0.9,en;q=0.8",
	"lt-LT,lt;q=0.9,en;q=0.8",
	"ka-GE,ka;q=0.9,en;q=0.8",
	"hy-AM,hy;q=0.9,en;q=0.8",
	"az-AZ,az;q=0.9,en;q=0.8",
	"mn-MN,mn;q=0.9,en;q=0.8",
	"ku-IQ,ku;q=0.9,en;q=0.8",
	"mk-MK,mk;q=0.9,en;q=0.8",
	"sq-AL,sq;q=0.9,en;q=0.8",
	"mt-MT,mt;q=0.9,en;q=0.8",
	"is-IS,is;q=0.9,en;q=0.8",
	"ga-IE,ga;q=0.9,en;q=0.8",
	"gd-GB,gd;q=0.9,en;q=0.8",
	"cy-GB,cy;q=0.9,en;q=0.8",
	"br-FR,br;q=0.9,en;q=0.8",
	"eu-ES,eu;q=0.9,en;q=0.8",
	"ca-ES,ca;q=0.9,en;q=0.8",
	"gl-ES,gl;q=0.9,en;q=0.8",
	"eo,en;q=0.9",
	"af-ZA,af;q=0.9,en;q=0.8",
	"xh-ZA,xh;q=0.9,en;q=0.8",
	"zu-ZA,zu;q=0.9,en;q=0.8",
	"st-ZA,st;q=0.9,en;q=0.8",
	"tn-ZA,tn;q=0.9,en;q=0.8",
	"ss-ZA,ss;q=0.9,en;q=0.8",
	"ve-ZA,ve;q=0.9,en;q=0.8",
	"nso-ZA,nso;q=0.9,en;q=0.8",
	"tg-TJ,tg;q=0.9,en;q=0.8",
	"ps-AF,ps;q=0.9,en;q=0.8",
	"dv-MV,dv;q=0.9,en;q=0.8",
	"mi-NZ,mi;q=0.9,en;q=0.8",
	"tk-TM,tk;q=0.9,en;q=0.8",
	"km-KH,km;q=0.9,en;q=0.8",
	"lo-LA,lo;q=0.9,en;q=0.8",
	"my-MM,my;q=0.9,en;q=0.8",
	"ne-NP,ne;q=0.9,en;q=0.8",
	"si-LK,si;q=0.9,en;q=0.8",
	"mn-CN,mn;q=0.9,en;q=0.8",
	"bo-CN,bo;q=0.9,en;q=0.8",
	"ug-CN,ug;q=0.9,en;q=0.8",
	"kk-KZ,kk;q=0.9,en;q=0.8",
	"uz-UZ,uz;q=0.9,en;q=0.8",
	"tt-RU,tt;q=0.9,en;q=0.8",
	"ba-RU,ba;q=0.9,en;q=0.8",
	"cv-RU,cv;q=0.9,en;q=0.8",
	"os-RU,os;q=0.9,en;q=0.8",
	"av-RU,av;q=0.9,en;q=0.8",
	"ce-RU,ce;q=0.9,en;q=0.8",
	"kaa-KZ,kaa;q=0.9,en;q=0.8",
	"tr-CY,tr;q=0.9,en;q=0.8",
	"el-CY,el;q=0.9,en;q=0.8",
	"ru-MD,ru;q=0.9,en;q=0.8",
	"uk-MD,uk;q=0.9,en;q=0.8",
	"ro-MD,ro;q=0.9,en;q=0.8",
	"tr-DE,tr;q=0.9,en;q=0.8",
	"ar-DE,ar;q=0.9,en;q=0.8",
	"ru-DE,ru;q=0.9,en;q=0.8",
	"es-DE,es;q=0.9,en;q=0.8",
	"it-DE,it;q=0.9,en;q=0.8",
	"pl-DE,pl;q=0.9,en;q=0.8",
	"tr-FR,tr;q=0.9,en;q=0.8",
	"ar-FR,ar;q=0.9,en;q=0.8",
	"ru-FR,ru;q=0.9,en;q=0.8",
	"es-FR,es;q=0.9,en;q=0.8",
	"it-FR,it;q=0.9,en;q=0.8",
	"pl-FR,pl;q=0.9,en;q=0.8",
	"tr-GB,tr;q=0.9,en;q=0.8",
	"ar-GB,ar;q=0.9,en;q=0.8",
	"ru-GB,ru;q=0.9,en;q=0.8",
	"es-GB,es;q=0.9,en;q=0.8",
	"it-GB,it;q=0.9,en;q=0.8",
	"pl-GB,pl;q=0.9,en;q=0.8",
	"tr-US,tr;q=0.9,en;q=0.8",
	"ar-US,ar;q=0.9,en;q=0.8",
	"ru-US,ru;q=0.9,en;q=0.8",
	"es-US,es;q=0.9,en;q=0.8",
	"it-US,it;q=0.9,en;q=0.8",
	"pl-US,pl;q=0.9,en;q=0.8",
	"tr-CA,tr;q=0.9,en;q=0.8",
	"ar-CA,ar;q=0.9,en;q=0.8",
	"ru-CA,ru;q=0.9,en;q=0.8",
	"es-CA,es;q=0.9,en;q=0.8",
	"it-CA,it;q=0.9,en;q=0.8",
	"pl-CA,pl;q=0.9,en;q=0.8",
	"tr-AU,tr;q=0.9,en;q=0.8",
	"ar-AU,ar;q=0.9,en;q=0.8",
	"ru-AU,ru;q=0.9,en;q=0.8",
	"es-AU,es;q=0.9,en;q=0.8",
	"it-AU,it;q=0.9,en;q=0.8",
	"pl-AU,pl;q=0.9,en;q=0.8",
	"tr-NZ,tr;q=0.9,en;q=0.8",
	"ar-NZ,ar;q=0.9,en;q=0.8",
}

// --- WebGL ---

var webGLVendors = []string{
	"Google Inc. (NVIDIA)",
	"Google Inc. (Intel)",
	"Google Inc. (AMD)",
	"Google Inc. (Apple)",
	"Microsoft Corporation (NVIDIA)",
	"Microsoft Corporation (Intel)",
	"Microsoft Corporation (AMD)",
	"Apple Computer, Inc.",
	"NVIDIA Corporation",
	"Intel Inc.",
	"AMD Inc.",
	"Qualcomm Incorporated",
	"ARM Limited",
	"Imagination Technologies",
	"Broadcom Inc.",
	"NXP Semiconductors",
	"Texas Instruments Incorporated",
	"Samsung Electronics Co., Ltd.",
	"AMD Inc. (NVIDIA)",
	"AMD Inc. (Intel)",
	"AMD Inc. (Qualcomm)",
	"Hisilicon Technologies Co., Ltd.",
	"Rockchip Electronics Co., Ltd.",
	"MediaTek Inc.",
	"Intel Inc. (AMD)",
	"Intel Inc. (Qualcomm)",
	"NVIDIA Corporation (AMD)",
	"NVIDIA Corporation (Qualcomm)",
	"Google Inc. (Broadcom)",
	"Google Inc. (Texas Instruments)",
	"Microsoft Corporation (ARM)",
	"Microsoft Corporation (Samsung)",
	"Apple Inc. (NVIDIA)",
	"Apple Inc. (Intel)",
	"Apple Inc. (AMD)",
	"Google Inc. (Samsung)",
	"Google Inc. (MediaTek)",
	"Google Inc. (Hisilicon)",
	"Google Inc. (Rockchip)",
}

var webGLRenderers = []string{
	"ANGLE (NVIDIA GeForce RTX 3070 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA GeForce GTX 1660 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Intel(R) UHD Graphics 630 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 6800 XT Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Intel(R) Iris(R) Xe Graphics Direct3D11 vs_5_0 ps_5_0)",
	"Metal GPU Family Apple 8 (Apple M1)",
	"Metal GPU Family Apple 7 (Apple A14)",
	"ANGLE (Apple M2 GPU Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA GeForce GTX 1080 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon R9 390 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Intel(R) HD Graphics 530 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Qualcomm Adreno 650 Direct3D11 vs_6_0 ps_6_0)",
	"ANGLE (ARM Mali-G76 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Imagination PowerVR GMA 2500 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Broadcom VideoCore IV Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NXP i.MX6 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Texas Instruments AM62x Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Samsung Exynos Mali-T880 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon Vega 8 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 11 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Hisilicon Kirin 970 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Rockchip RK3399 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (MediaTek MT8173 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Intel(R) Iris(TM) Plus Graphics Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Intel(R) HD Graphics 620 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA GeForce GTX 1050 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA GeForce GTX 950 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA Tegra X1 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (NVIDIA Tegra K1 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7750 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7870 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Texas Instruments AM5728 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (Samsung Exynos 5420 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 560 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 460 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 550 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 3 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 5 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 7 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 9 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 540 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 530 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 520 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 570 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX 580 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon Vega Frontier Edition Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega M GL Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon Pro Duo Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 64 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 56 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 33 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 31 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 30 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 20 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon RX Vega 10 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7990 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7970 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7950 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7890 Direct3D11 vs_5_0 ps_5_0)",
	"ANGLE (AMD Radeon HD 7850 Direct3D11 vs_5_0 ps_5_0)",
}
