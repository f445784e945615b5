package jolly

// Selector literals for jollytur.com. These are tightly coupled to the
// site's current markup; when the site changes, this file is what breaks.
const (
	entryURL = "https://www.jollytur.com/"
	siteBase = "https://www.jollytur.com"

	// Search form
	selDestinationInput = `input[name="destination"]`
	selDateRow          = `div.date-row`
	selCalendarTitle    = `div.ui-datepicker-title`
	selCalendarMonth    = `div.ui-datepicker-title > span.ui-datepicker-month`
	selCalendarYear     = `div.ui-datepicker-title > span.ui-datepicker-year`
	selCalendarNext     = `span.ui-icon.ui-icon-circle-triangle-e`
	selPersonCount      = `div.list.person-count`
	selSearchButton     = `div.travel-planner-inner.travel-planner-hotel > div > div.list.action-button`

	// Day cells carry their day-of-month as text, which CSS cannot match.
	xpCalendarDay = `//table[@class='ui-datepicker-calendar']/tbody//a[text()='%s']`

	// Party-size dropdown (only valid while the "show" class is present)
	xpAdultCount = `//div[@class='room-count-dropdown hotel-room-count-dropdown show']` +
		`/div[@class='room-info']/div[1]/div[2]//span[contains(@class,'primary-select async adult-number')]`
	xpAdultInc = `//div[@class='room-count-dropdown hotel-room-count-dropdown show']` +
		`/div[@class='room-info']/div[1]/div[2]//div[@data-name='inc']`
	xpAdultDec = `//div[@class='room-count-dropdown hotel-room-count-dropdown show']` +
		`/div[@class='room-info']/div[1]/div[2]//div[@data-name='dec']`

	// Result-list loader
	xpLoadStatus = `//div[@class='listMoreCt']/span[@class='moreTextList']`
	xpLoadMore   = `//div[@class='listMoreCt']/a/button`

	// List page (parsed from page source)
	qListing     = `div.list[data-url]`
	qUnavailable = `div.alert.alert-danger.alert-error`

	// Detail page — live elements
	selDetailPrice    = `div.reservation-col div.total-price span[class*="current-price"]`
	selCancelPolicy   = `div.reservation-col div[class*="cancelPolicy-badge"]`
	selRecommend      = `div.detailrecommend`
	selGeneralInfoTab = `ul.etabs li a[href="#genel-bilgiler"]`

	// Detail page — parsed from page source. "hotel-deatil-box" is the
	// site's own spelling.
	qTitle          = `h1.title`
	qLocation       = `ul.title-bottom-info li a[title="Maps"]`
	qAccommodation  = `div.meal-type-info-content div.info > div`
	qTimeTitle      = `div.checkin-checkout span.title`
	qHotelDetailBox = `div.hotel-deatil-box`
	qFeatureItems   = `div.content ul.detail-list li`
)
