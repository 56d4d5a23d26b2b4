package domain

import "time"

const (
	IntentRefund       = "REFUND"
	CurrencyUSD        = "USD"
	CarrierCode        = "DL"
	TravelContext      = "Vol"
	DecimalPrecision   = 2
	AgentRoleID        = "RESGENSALES"
	SenderCode         = "OMP"
	TestLabName        = "TSBB"
	PointOfSaleCountry = "US"
)

type AmountType string

const (
	AmountTotal     AmountType = "TotalAmount"
	AmountRefund    AmountType = "RefundAmount"
	AmountRefundTax AmountType = "RefundTotalTax"
)

var (
	PassengerTypeCodes = []string{"ADT", "CHD", "INF", "INS", "UNN"}
	CardNetworkCodes   = []string{"AMEX", "MC", "VISA", "DISC"}
	SenderCityCodes    = []string{"ATL", "BOS", "DET", "NYC", "SEA"}
	TaxChargeCodes     = []string{"AY", "XF", "ZP"}
)

// FulfillmentDocument is one simulated refund transaction as written to storage.
type FulfillmentDocument struct {
	FulfillmentInfo FulfillmentInfo `json:"fulfillmentInfo" bson:"fulfillmentInfo"`
	Sender          Sender          `json:"sender" bson:"sender"`
}

type FulfillmentInfo struct {
	IntentCriteria      IntentCriteria    `json:"intentCriteria" bson:"intentCriteria"`
	RefundDataList      []RefundData      `json:"refundDataList" bson:"refundDataList"`
	RefundTransactionID string            `json:"refundTransactionId" bson:"refundTransactionId"`
	TravelContextText   string            `json:"travelContextText" bson:"travelContextText"`
	TravelContextDesc   string            `json:"travelContextDesc" bson:"travelContextDesc"`
	PnrSegment          []FlightSegment   `json:"pnrSegment" bson:"pnrSegment"`
	EligibilityStatus   EligibilityStatus `json:"eligibilitystatus" bson:"eligibilitystatus"`
}

type IntentCriteria struct {
	CallerIntentText string `json:"callerIntentText" bson:"callerIntentText"`
}

type EligibilityStatus struct {
	HasRemarks bool `json:"hasRemarks" bson:"hasRemarks"`
}

type RefundData struct {
	AccountableDocumentNum            string            `json:"accountableDocumentNum" bson:"accountableDocumentNum"`
	IssueLocalDate                    time.Time         `json:"issueLocalDate" bson:"issueLocalDate"`
	Customers                         []Customer        `json:"customers" bson:"customers"`
	Amounts                           []Amount          `json:"amounts" bson:"amounts"`
	PaymentMethod                     []PaymentMethod   `json:"paymentMethod" bson:"paymentMethod"`
	TravelRelatedServiceTaxCategories []TaxCategory     `json:"travelRelatedServiceTaxCategories" bson:"travelRelatedServiceTaxCategories"`
	CouponList                        []Coupon          `json:"couponList" bson:"couponList"`
	SaleTypeCode                      string            `json:"saleTypeCode" bson:"saleTypeCode"`
	TravelContextText                 string            `json:"travelContextText" bson:"travelContextText"`
	TravelContextDesc                 string            `json:"travelContextDesc" bson:"travelContextDesc"`
	DocumentCategoryCode              string            `json:"documentCategoryCode" bson:"documentCategoryCode"`
	RefundType                        string            `json:"refundType" bson:"refundType"`
	Eligibility                       RefundEligibility `json:"eligibility" bson:"eligibility"`
	RecordLocator                     string            `json:"recordLocator" bson:"recordLocator"`
	FareCalculation                   FareCalculation   `json:"fareCalculation" bson:"fareCalculation"`
}

type Customer struct {
	CustomerName      CustomerName `json:"customerName" bson:"customerName"`
	NameNum           string       `json:"nameNum" bson:"nameNum"`
	PassengerTypeCode string       `json:"passengerTypeCode" bson:"passengerTypeCode"`
}

type CustomerName struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

type Amount struct {
	AmountTypeCode AmountType  `json:"amountTypeCode" bson:"amountTypeCode"`
	Amount         PriceHolder `json:"amount" bson:"amount"`
}

type PriceHolder struct {
	CurrencyEquivalentPrice Price `json:"currencyEquivalentPrice" bson:"currencyEquivalentPrice"`
}

type Price struct {
	DecimalPrecisionCnt int     `json:"decimalPrecisionCnt" bson:"decimalPrecisionCnt"`
	CurrencyAmt         float64 `json:"currencyAmt" bson:"currencyAmt"`
	CurrencyCode        string  `json:"currencyCode" bson:"currencyCode"`
}

type PaymentMethod struct {
	PaymentMethodTypeName string      `json:"paymentMethodTypeName" bson:"paymentMethodTypeName"`
	PaymentCard           PaymentCard `json:"paymentCard" bson:"paymentCard"`
}

type PaymentCard struct {
	PaymentCardNetworkCode string `json:"paymentCardNetworkCode" bson:"paymentCardNetworkCode"`
	PaymentCardNum         string `json:"paymentCardNum" bson:"paymentCardNum"`
}

type TaxCategory struct {
	TravelRelatedServiceTaxCategoryCode string `json:"travelRelatedServiceTaxCategoryCode" bson:"travelRelatedServiceTaxCategoryCode"`
	TravelRelatedServiceTaxes           []Tax  `json:"travelRelatedServiceTaxes" bson:"travelRelatedServiceTaxes"`
}

type Tax struct {
	ChargeTypeCode    string      `json:"chargeTypeCode" bson:"chargeTypeCode"`
	DocumentTaxFeeAmt PriceHolder `json:"documentTaxFeeAmt" bson:"documentTaxFeeAmt"`
}

// Coupon is one flight leg of the refunded ticket.
type Coupon struct {
	CouponNum                   int       `json:"couponNum" bson:"couponNum"`
	CouponStatusCode            int       `json:"couponStatusCode" bson:"couponStatusCode"`
	ResequencedCouponNum        int       `json:"resequencedCouponNum" bson:"resequencedCouponNum"`
	TicketCouponSequenceNum     int       `json:"ticketCouponSequenceNum" bson:"ticketCouponSequenceNum"`
	AccountableDocumentNum      string    `json:"accountableDocumentNum" bson:"accountableDocumentNum"`
	OriginAirportCode           string    `json:"originAirportCode" bson:"originAirportCode"`
	DestinationAirportCode      string    `json:"destinationAirportCode" bson:"destinationAirportCode"`
	FlightNum                   int       `json:"flightNum" bson:"flightNum"`
	MarketingFlightNum          int       `json:"marketingFlightNum" bson:"marketingFlightNum"`
	OperatedAsFlightNum         int       `json:"operatedAsFlightNum" bson:"operatedAsFlightNum"`
	OperatedAsCarrierCode       string    `json:"operatedAsCarrierCode" bson:"operatedAsCarrierCode"`
	OperatedAsCarrierName       string    `json:"operatedAsCarrierName" bson:"operatedAsCarrierName"`
	OperatedByFlightNum         int       `json:"operatedByFlightNum" bson:"operatedByFlightNum"`
	ScheduledDepartureLocalDate time.Time `json:"scheduledDepartureLocalDate" bson:"scheduledDepartureLocalDate"`
}

type RefundEligibility struct {
	Refundable   bool `json:"refundable" bson:"refundable"`
	HasCompanion bool `json:"hasCompanion" bson:"hasCompanion"`
}

type FareCalculation struct {
	FareCalculationLineText string `json:"fareCalculationLineText" bson:"fareCalculationLineText"`
	FareCalculationTypeCode string `json:"fareCalculationTypeCode" bson:"fareCalculationTypeCode"`
}

// FlightSegment is a PNR itinerary leg, date-aligned with the coupon of the same leg.
type FlightSegment struct {
	AircraftTypeCode          string    `json:"aircraftTypeCode" bson:"aircraftTypeCode"`
	CancelEligible            bool      `json:"cancelEligible" bson:"cancelEligible"`
	DestinationAirportCode    string    `json:"destinationAirportCode" bson:"destinationAirportCode"`
	FlightSegmentNum          int       `json:"flightSegmentNum" bson:"flightSegmentNum"`
	Flown                     bool      `json:"flown" bson:"flown"`
	OriginAirportCode         string    `json:"originAirportCode" bson:"originAirportCode"`
	ScheduledDepartureLocalTs time.Time `json:"scheduledDepartureLocalTs" bson:"scheduledDepartureLocalTs"`
}

type Sender struct {
	ReservationAgent                ReservationAgent `json:"reservationAgent" bson:"reservationAgent"`
	SenderCode                      string           `json:"senderCode" bson:"senderCode"`
	TestLabName                     string           `json:"testLabName" bson:"testLabName"`
	InactiveSessionTimeoutSecondCnt int              `json:"inactiveSessionTimeoutSecondCnt" bson:"inactiveSessionTimeoutSecondCnt"`
	SessionTimeoutSecondCnt         int              `json:"sessionTimeoutSecondCnt" bson:"sessionTimeoutSecondCnt"`
	PointOfSale                     PointOfSale      `json:"pointOfSale" bson:"pointOfSale"`
}

type ReservationAgent struct {
	AgentID     int    `json:"agentId" bson:"agentId"`
	AgentRoleID string `json:"agentRoleId" bson:"agentRoleId"`
	CityCode    string `json:"cityCode" bson:"cityCode"`
}

type PointOfSale struct {
	CountryCode         string `json:"countryCode" bson:"countryCode"`
	PointOfSaleCityCode string `json:"pointOfSaleCityCode" bson:"pointOfSaleCityCode"`
	SoldByTravelAgency  bool   `json:"soldByTravelAgency" bson:"soldByTravelAgency"`
	PointOfSaleID       string `json:"pointOfSaleId" bson:"pointOfSaleId"`
	VdnCode             int    `json:"vdnCode" bson:"vdnCode"`
	CustomerID          int    `json:"customerId" bson:"customerId"`
}

// TransactionID is the key used by backends that store documents by identifier.
func (d FulfillmentDocument) TransactionID() string {
	return d.FulfillmentInfo.RefundTransactionID
}
