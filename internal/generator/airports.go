package generator

var airportCodes = []string{
	"ATL", "PEK", "DXB", "LAX", "HND", "ORD", "LHR", "PVG", "CDG", "DFW",
	"CAN", "AMS", "HKG", "ICN", "FRA", "DEN", "DEL", "SIN", "BKK", "JFK",
	"KUL", "MAD", "SFO", "CTU", "SZX", "BCN", "IST", "SEA", "LAS", "MCO",
	"YYZ", "MEX", "CLT", "SVO", "TPE", "KMG", "MUC", "MNL", "XIY", "LGW",
	"EWR", "PHX", "MIA", "SHA", "IAH", "CGK", "SYD", "NRT", "GRU", "FCO",
	"BOM", "MSP", "DTW", "BOS", "PHL", "LGA", "FLL", "BWI", "DCA", "SLC",
	"IAD", "MDW", "SAN", "TPA", "PDX", "HNL", "AUS", "BNA", "STL", "MSY",
	"DUB", "ZRH", "VIE", "CPH", "OSL", "ARN", "HEL", "LIS", "ATH", "DOH",
	"YVR", "YUL", "CUN", "BOG", "LIM", "SCL", "EZE", "JNB", "CAI", "MEL",
}
