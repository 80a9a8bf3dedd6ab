package caiyun

// Typed view of the provider's response envelope. Every sub-document the
// provider may omit is a pointer or a slice, so report builders branch on
// presence instead of probing generic maps.

// Envelope is the fixed top-level shape of every provider response.
type Envelope struct {
	Status     string    `json:"status"`
	APIVersion string    `json:"api_version"`
	APIStatus  string    `json:"api_status"`
	Lang       string    `json:"lang"`
	Unit       string    `json:"unit"`
	ServerTime int64     `json:"server_time"`
	Location   []float64 `json:"location"`
	Result     Result    `json:"result"`
}

// Result carries whichever sub-documents the requested endpoint includes.
type Result struct {
	Realtime         *Realtime `json:"realtime"`
	Hourly           *Hourly   `json:"hourly"`
	Daily            *Daily    `json:"daily"`
	Minutely         *Minutely `json:"minutely"`
	Alert            *Alert    `json:"alert"`
	ForecastKeypoint string    `json:"forecast_keypoint"`
}

type Wind struct {
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
}

type PrecipLocal struct {
	Status     string  `json:"status"`
	Datasource string  `json:"datasource"`
	Intensity  float64 `json:"intensity"`
}

type PrecipNearest struct {
	Status    string  `json:"status"`
	Distance  float64 `json:"distance"`
	Intensity float64 `json:"intensity"`
}

type Precipitation struct {
	Local   PrecipLocal    `json:"local"`
	Nearest *PrecipNearest `json:"nearest"`
}

type AQIValue struct {
	Chn int `json:"chn"`
	Usa int `json:"usa"`
}

type AirQuality struct {
	PM25        int      `json:"pm25"`
	PM10        int      `json:"pm10"`
	O3          int      `json:"o3"`
	SO2         int      `json:"so2"`
	NO2         int      `json:"no2"`
	CO          float64  `json:"co"`
	AQI         AQIValue `json:"aqi"`
	Description struct {
		Chn string `json:"chn"`
		Usa string `json:"usa"`
	} `json:"description"`
}

// IndexDesc is one realtime life-index entry: a numeric level plus the
// provider's own wording for it.
type IndexDesc struct {
	Index *float64 `json:"index"`
	Desc  string   `json:"desc"`
}

type LifeIndex struct {
	Ultraviolet *IndexDesc `json:"ultraviolet"`
	Comfort     *IndexDesc `json:"comfort"`
}

type Realtime struct {
	Temperature         float64        `json:"temperature"`
	ApparentTemperature *float64       `json:"apparent_temperature"`
	Humidity            float64        `json:"humidity"`
	Cloudrate           float64        `json:"cloudrate"`
	Skycon              string         `json:"skycon"`
	Visibility          float64        `json:"visibility"`
	Dswrf               float64        `json:"dswrf"`
	Wind                Wind           `json:"wind"`
	Pressure            float64        `json:"pressure"`
	Precipitation       *Precipitation `json:"precipitation"`
	AirQuality          *AirQuality    `json:"air_quality"`
	LifeIndex           *LifeIndex     `json:"life_index"`
}

// Hourly series entries all carry their own datetime so a truncated or
// ragged series never forces index arithmetic across fields.

type HourlyValue struct {
	Datetime string  `json:"datetime"`
	Value    float64 `json:"value"`
}

type HourlyPrecip struct {
	Datetime    string   `json:"datetime"`
	Value       float64  `json:"value"`
	Probability *float64 `json:"probability"`
}

type HourlyWind struct {
	Datetime  string  `json:"datetime"`
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
}

type HourlySkycon struct {
	Datetime string `json:"datetime"`
	Value    string `json:"value"`
}

type HourlyAQI struct {
	Datetime string   `json:"datetime"`
	Value    AQIValue `json:"value"`
}

type HourlyAirQuality struct {
	AQI  []HourlyAQI   `json:"aqi"`
	PM25 []HourlyValue `json:"pm25"`
}

type Hourly struct {
	Status              string            `json:"status"`
	Description         string            `json:"description"`
	Precipitation       []HourlyPrecip    `json:"precipitation"`
	Temperature         []HourlyValue     `json:"temperature"`
	ApparentTemperature []HourlyValue     `json:"apparent_temperature"`
	Wind                []HourlyWind      `json:"wind"`
	Humidity            []HourlyValue     `json:"humidity"`
	Cloudrate           []HourlyValue     `json:"cloudrate"`
	Skycon              []HourlySkycon    `json:"skycon"`
	Visibility          []HourlyValue     `json:"visibility"`
	AirQuality          *HourlyAirQuality `json:"air_quality"`
}

type DailyRange struct {
	Date string  `json:"date"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
	Avg  float64 `json:"avg"`
}

type DailyPrecip struct {
	Date        string   `json:"date"`
	Max         float64  `json:"max"`
	Min         float64  `json:"min"`
	Avg         float64  `json:"avg"`
	Probability *float64 `json:"probability"`
}

type DailyWind struct {
	Date string `json:"date"`
	Max  Wind   `json:"max"`
	Min  Wind   `json:"min"`
	Avg  Wind   `json:"avg"`
}

type DailySkycon struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type TimeOfDay struct {
	Time string `json:"time"`
}

type Astro struct {
	Date             string     `json:"date"`
	Sunrise          TimeOfDay  `json:"sunrise"`
	Sunset           TimeOfDay  `json:"sunset"`
	Moonrise         *TimeOfDay `json:"moonrise"`
	Moonset          *TimeOfDay `json:"moonset"`
	MoonPhase        string     `json:"moon_phase"`
	MoonIllumination *float64   `json:"moon_illumination"`
}

type DailyAQI struct {
	Date string   `json:"date"`
	Max  AQIValue `json:"max"`
	Avg  AQIValue `json:"avg"`
	Min  AQIValue `json:"min"`
}

type DailyAirQuality struct {
	AQI  []DailyAQI   `json:"aqi"`
	PM25 []DailyRange `json:"pm25"`
}

// DailyIndex is one daily life-index entry. The provider sends the level
// as a string here, unlike the realtime block.
type DailyIndex struct {
	Date  string `json:"date"`
	Index string `json:"index"`
	Desc  string `json:"desc"`
}

type DailyLifeIndex struct {
	Ultraviolet []DailyIndex `json:"ultraviolet"`
	CarWashing  []DailyIndex `json:"carWashing"`
	Dressing    []DailyIndex `json:"dressing"`
	Comfort     []DailyIndex `json:"comfort"`
	ColdRisk    []DailyIndex `json:"coldRisk"`
}

type Daily struct {
	Status         string           `json:"status"`
	Astro          []Astro          `json:"astro"`
	Temperature    []DailyRange     `json:"temperature"`
	Temperature08h []DailyRange     `json:"temperature_08h_20h"`
	Temperature20h []DailyRange     `json:"temperature_20h_32h"`
	Precipitation  []DailyPrecip    `json:"precipitation"`
	Wind           []DailyWind      `json:"wind"`
	Humidity       []DailyRange     `json:"humidity"`
	Cloudrate      []DailyRange     `json:"cloudrate"`
	Pressure       []DailyRange     `json:"pressure"`
	Visibility     []DailyRange     `json:"visibility"`
	AirQuality     *DailyAirQuality `json:"air_quality"`
	Skycon         []DailySkycon    `json:"skycon"`
	Skycon08h      []DailySkycon    `json:"skycon_08h_20h"`
	Skycon20h      []DailySkycon    `json:"skycon_20h_32h"`
	LifeIndex      *DailyLifeIndex  `json:"life_index"`
}

type Minutely struct {
	Status          string    `json:"status"`
	Datasource      string    `json:"datasource"`
	Description     string    `json:"description"`
	Probability     []float64 `json:"probability"`
	Precipitation   []float64 `json:"precipitation"`
	Precipitation2h []float64 `json:"precipitation_2h"`
}

type AdCode struct {
	ADCode int    `json:"adcode"`
	Name   string `json:"name"`
}

type AlertContent struct {
	Title        string  `json:"title"`
	Code         string  `json:"code"`
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Source       string  `json:"source"`
	PubTimestamp float64 `json:"pubtimestamp"`
}

type Alert struct {
	Status  string         `json:"status"`
	Content []AlertContent `json:"content"`
	AdCodes []AdCode       `json:"adcodes"`
}
