package resources

var priorityLevels = []string{"Low", "Medium", "High"}

func init() {
	register(Definition{
		Kind:           KindDispatch,
		Title:          "Dispatches",
		ListEndpoint:   "retrieve-dispatch",
		CreateEndpoint: "create-dispatch",
		Fields: []Field{
			{Name: "RequestorName", Label: "Requestor name", Kind: FieldText, Required: true},
			{Name: "RequestStatus", Label: "Request status", Kind: FieldChoice, Required: true,
				Options: []string{"Pending", "Approved", "Completed", "Cancelled"}},
			{Name: "DispatchDate", Label: "Dispatch date", Kind: FieldDate, Required: true},
			{Name: "PatientCount", Label: "Transported patients", Kind: FieldNumber, NonNegative: true},
			{Name: "Destination", Label: "Destination", Kind: FieldText},
			{Name: "Remarks", Label: "Remarks", Kind: FieldText},
		},
		SearchFields:  []string{"RequestorName", "RequestStatus"},
		CategoryField: "RequestStatus",
	})

	register(Definition{
		Kind:           KindReminder,
		Title:          "Reminders",
		ListEndpoint:   "reminder",
		CreateEndpoint: "create-reminder",
		Fields: []Field{
			{Name: "ReminderDate", Label: "Reminder date", Kind: FieldDate, Required: true},
			{Name: "DueDate", Label: "Due date", Kind: FieldDate},
			{Name: "ReminderStatus", Label: "Status", Kind: FieldChoice, Required: true,
				Options: []string{"Open", "Done"}},
			{Name: "Remarks", Label: "Remarks", Kind: FieldText},
		},
		SearchFields:  []string{"Remarks", "ReminderStatus"},
		CategoryField: "ReminderStatus",
		Orderings:     []Ordering{{Before: "ReminderDate", After: "DueDate"}},
	})

	register(Definition{
		Kind:           KindRepair,
		Title:          "Repair requests",
		ListEndpoint:   "repair-request",
		CreateEndpoint: "create-repair-request",
		Fields: []Field{
			{Name: "VehicleName", Label: "Vehicle name", Kind: FieldText, Required: true},
			{Name: "DriverID", Label: "Driver ID", Kind: FieldNumber, Required: true, NonNegative: true},
			{Name: "RequestDate", Label: "Request date", Kind: FieldDate, Required: true},
			{Name: "ReportedIssue", Label: "Reported issue", Kind: FieldText, Required: true},
			{Name: "IssueDescription", Label: "Issue description", Kind: FieldText},
			{Name: "PriorityLevel", Label: "Priority level", Kind: FieldChoice, Required: true, Options: priorityLevels},
		},
		SearchFields:  []string{"VehicleName", "ReportedIssue", "PriorityLevel"},
		CategoryField: "PriorityLevel",
	})

	register(Definition{
		Kind:           KindMaintenance,
		Title:          "Maintenance recommendations",
		ListEndpoint:   "maintenance-recommendation",
		CreateEndpoint: "create-maintenance-recommendation",
		Fields: []Field{
			{Name: "VehicleName", Label: "Vehicle name", Kind: FieldText, Required: true},
			{Name: "DriverID", Label: "Driver ID", Kind: FieldNumber, Required: true, NonNegative: true},
			{Name: "RecommendationType", Label: "Recommendation type", Kind: FieldText, Required: true},
			{Name: "Issues", Label: "Issues", Kind: FieldText},
			{Name: "IssueDescription", Label: "Issue description", Kind: FieldText},
			{Name: "RecommendationDate", Label: "Recommendation date", Kind: FieldDate, Required: true},
			{Name: "DueDate", Label: "Due date", Kind: FieldDate},
			{Name: "PriorityLevel", Label: "Priority level", Kind: FieldChoice, Required: true, Options: priorityLevels},
		},
		SearchFields:  []string{"VehicleName", "RecommendationType"},
		CategoryField: "PriorityLevel",
		Orderings:     []Ordering{{Before: "RecommendationDate", After: "DueDate"}},
	})

	register(Definition{
		Kind:           KindTripTicket,
		Title:          "Trip tickets",
		ListEndpoint:   "trip-ticket",
		CreateEndpoint: "create-trip-ticket",
		Fields: []Field{
			{Name: "TripTicketNumber", Label: "Trip ticket number", Kind: FieldText, Required: true},
			{Name: "ArrivalDate", Label: "Arrival date", Kind: FieldDate},
			{Name: "ReturnDate", Label: "Return date", Kind: FieldDate},
			{Name: "VehicleName", Label: "Vehicle name", Kind: FieldText, Required: true},
			{Name: "DriverID", Label: "Driver ID", Kind: FieldText, Required: true},
			{Name: "ResponderNames", Label: "Responder names", Kind: FieldText},
			{Name: "Origin", Label: "Origin", Kind: FieldText},
			{Name: "Destination", Label: "Destination", Kind: FieldText},
			{Name: "Purpose", Label: "Purpose", Kind: FieldText},
			{Name: "KmBeforeTravel", Label: "Km before travel", Kind: FieldNumber, NonNegative: true},
			{Name: "KmAfterTravel", Label: "Km after travel", Kind: FieldNumber, NonNegative: true},
			{Name: "DistanceTravelled", Label: "Distance travelled", Kind: FieldNumber, NonNegative: true},
			{Name: "BalanceStart", Label: "Fuel balance at start", Kind: FieldNumber, NonNegative: true},
			{Name: "IssuedFromOffice", Label: "Fuel issued from office", Kind: FieldNumber, NonNegative: true},
			{Name: "AddedDuringTrip", Label: "Fuel added during trip", Kind: FieldNumber, NonNegative: true},
			{Name: "TotalFuelTank", Label: "Total fuel in tank", Kind: FieldNumber, NonNegative: true},
			{Name: "FuelConsumed", Label: "Fuel consumed", Kind: FieldNumber, NonNegative: true},
			{Name: "BalanceEnd", Label: "Fuel balance at end", Kind: FieldNumber, NonNegative: true},
			{Name: "DepartureTimeFromOffice", Label: "Departure from office", Kind: FieldText},
			{Name: "ArrivalAtDestination", Label: "Arrival at destination", Kind: FieldText},
			{Name: "DepartureFromDestination", Label: "Departure from destination", Kind: FieldText},
			{Name: "ArrivalAtOffice", Label: "Arrival at office", Kind: FieldText},
			{Name: "Others", Label: "Others", Kind: FieldText},
			{Name: "Remarks", Label: "Remarks", Kind: FieldText},
		},
		SearchFields: []string{"TripTicketNumber", "VehicleName", "DriverID", "Origin", "Destination"},
		Orderings: []Ordering{
			{Before: "KmBeforeTravel", After: "KmAfterTravel"},
			{Before: "ArrivalDate", After: "ReturnDate"},
		},
	})
}
