package ruddr_test

// Response bodies shaped like the workspace API's documented examples.

const projectFixture = `{
  "id": "095e0780-48bf-472c-8deb-2fc3ebc7d90c",
  "key": "vendor-portal",
  "name": "Vendor Portal",
  "notes": "",
  "statusId": "in_progress",
  "start": "2021-09-01",
  "end": "2022-01-31",
  "code": "VP",
  "poNumber": "",
  "billingTypeId": "fixed_recurring",
  "isBillable": true,
  "currency": "USD",
  "revenueRecognitionMethod": "manual",
  "fixedFee": null,
  "fixedRecurringFee": 15000,
  "fixedRecurringStart": null,
  "fixedRecurringEnd": null,
  "useRoles": true,
  "useBudget": true,
  "budgetMode": "detailed",
  "useMonthlyBudget": true,
  "monthlyBudgetMode": "aggregated",
  "requiresNotes": false,
  "requiresTasks": false,
  "recordStatusId": "active",
  "isProductive": null,
  "createdAt": "2022-03-15T14:59:18.825Z",
  "client": {"id": "4cacdf11-71d1-4fbb-90ee-b091803581b0", "name": "Acme Company"},
  "practice": {"id": "eeaf2a03-6e4f-4a0b-bb1a-b6e4e0f5a2c1", "name": "Digital Transformation"},
  "projectType": null,
  "tags": [
    {"id": "7f3c2a10-9d4b-4e21-8a6f-2b1c0d9e8f7a", "name": "Cloud"},
    {"id": "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d", "name": "Data Analytics"}
  ],
  "budget": {
    "revenue": 602500,
    "servicesRevenue": 600000,
    "otherRevenue": 2500,
    "billableExpenses": 0,
    "nonBillableExpenses": 0,
    "billableHours": 4000,
    "nonBillableHours": 20
  },
  "monthlyBudget": {
    "revenue": 50000,
    "servicesRevenue": 50000,
    "otherRevenue": 0,
    "billableExpenses": 0,
    "nonBillableExpenses": 0,
    "billableHours": 320,
    "nonBillableHours": 2
  }
}`

const customerFixture = `{
  "id": "4cacdf11-71d1-4fbb-90ee-b091803581b0",
  "key": "joes-shop",
  "name": "Joe's Shop",
  "code": "JOE",
  "currency": "USD",
  "notes": "",
  "emails": ["joe@joesshop.com", "jane@joesshop.com"],
  "streetAddress": "1 Main St",
  "useWorkspaceInvoiceDetails": true,
  "paymentTermsId": "net_15",
  "invoiceNotes": "",
  "isInternal": false,
  "recordStatusId": "active",
  "createdAt": "2022-02-24T16:08:18.640Z",
  "practice": null,
  "owner": {"id": "3f3df320-dd95-4a42-8eae-99243fb2ea86", "name": "Cameron Howe"},
  "tags": []
}`

const costFixture = `{
  "id": "b3a100b0-8e71-4f39-9d96-32f11838aa8c",
  "start": "2024-01-01",
  "end": "2024-12-31",
  "currency": "USD",
  "costPerHour": 50,
  "overheadCostPerHour": 15.5,
  "totalCostPerHour": 65.5,
  "isDefault": false,
  "createdAt": "2024-01-02T10:00:00.000Z"
}`

const utilizationFixture = `{
  "id": "c2d4e6f8-0a1b-4c3d-8e5f-6a7b8c9d0e1f",
  "start": null,
  "end": null,
  "targetPercentage": 80,
  "isDefault": true,
  "createdAt": "2024-01-02T10:00:00.000Z"
}`

const memberFixture = `{
  "id": "3f3df320-dd95-4a42-8eae-99243fb2ea86",
  "name": "Brian Lockett",
  "email": "brian@example.com",
  "isActive": true,
  "isBillable": true,
  "loginEnabled": true,
  "invitationStatusId": "accepted",
  "employmentTypeId": "employee",
  "costMethodId": "fixed",
  "defaultRate": 100,
  "defaultRateCurrency": "USD",
  "activeStartDate": "2021-01-04",
  "activeEndDate": null,
  "timeOffAllowed": true,
  "timeOffApprovalMode": "member",
  "receiveMissingTimeReminders": true,
  "unsubmittedTimesheetReminders": false,
  "forbidTimesheetSubmissionWhenBelowCapacity": false,
  "internalId": "E-042",
  "internalNotes": "",
  "createdAt": "2021-01-04T09:30:00.000Z",
  "securityRole": {"id": "8d7c6b5a-4f3e-4d2c-9b1a-0f9e8d7c6b5a", "name": "Administrator"},
  "jobTitle": null,
  "discipline": null,
  "practice": null,
  "location": null,
  "manager": null,
  "timeOffApprover": {"id": "3f3df320-dd95-4a42-8eae-99243fb2ea86", "name": "Brian Lockett"},
  "holidaySchedule": null,
  "tags": [],
  "skills": [],
  "availabilityPeriods": [
    {"id": "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", "start": "2021-01-04", "end": null, "hoursPerDay": [8, 8, 8, 8, 8, 0, 0]}
  ],
  "costPeriods": [` + costFixture + `],
  "utilizationTargetPeriods": [` + utilizationFixture + `]
}`

const timeEntryFixture = `{
  "id": "ec5543de-3b0f-47a0-b8ef-a6e18dc4b885",
  "typeId": "time_off",
  "statusId": "approved",
  "date": "2024-01-15",
  "minutes": 480,
  "timerStartedAt": null,
  "notes": "",
  "isBillable": false,
  "invoiced": false,
  "createdAt": "2024-01-10T08:15:42.123Z",
  "member": {"id": "3f3df320-dd95-4a42-8eae-99243fb2ea86", "name": "Brian Lockett"},
  "project": null,
  "role": null,
  "task": null,
  "timeOffType": {"id": "d4e5f6a7-b8c9-4d0e-8f1a-2b3c4d5e6f7a", "name": "Holiday"},
  "invoice": null
}`

const allocationFixture = `{
  "id": "f1c5f0f4-6a7e-4b55-9c34-6f0a4a2d3e11",
  "resourceTypeId": "member",
  "assignmentTypeId": "project",
  "start": "2024-01-08",
  "end": "2024-01-19",
  "unit": "day",
  "hoursPerDay": 6.5,
  "hoursPerWeek": null,
  "hoursPerMonth": null,
  "totalHours": 65,
  "isBillable": true,
  "notes": "",
  "readOnly": false,
  "entity": "allocation",
  "createdAt": "2023-12-20T17:00:00.000Z",
  "member": {"id": "3f3df320-dd95-4a42-8eae-99243fb2ea86", "name": "Brian Lockett"},
  "placeholder": null,
  "project": {
    "id": "095e0780-48bf-472c-8deb-2fc3ebc7d90c",
    "name": "Vendor Portal",
    "client": {"id": "4cacdf11-71d1-4fbb-90ee-b091803581b0", "name": "Joe's Shop"}
  },
  "role": null,
  "task": null,
  "timeOffType": null
}`

const roleFixture = `{
  "id": "7a1d2c3b-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
  "name": "Developer",
  "isActive": true,
  "isBillable": true,
  "rate": 150,
  "createdAt": "2022-03-15T15:00:00.000Z",
  "project": {
    "id": "095e0780-48bf-472c-8deb-2fc3ebc7d90c",
    "name": "Vendor Portal",
    "client": {"id": "4cacdf11-71d1-4fbb-90ee-b091803581b0", "name": "Acme Company"}
  },
  "discipline": null,
  "budget": {"billableHours": null, "nonBillableHours": 10},
  "monthlyBudget": null
}`

const expenseItemFixture = `{
  "id": "0b8f7c5e-3a21-4d6f-9e8a-1c2b3d4e5f60",
  "statusId": "pending_approval",
  "vendor": "Diner",
  "notes": "",
  "date": "2024-03-12",
  "currency": "USD",
  "amount": 42.5,
  "unitCount": null,
  "unitAmount": null,
  "isReimbursable": true,
  "isBillable": false,
  "invoiced": false,
  "createdAt": "2024-03-12T20:11:05.000Z",
  "expenseReport": {"id": "5f4b8a3e-1c2d-4e5f-8a9b-0c1d2e3f4a5b", "title": "Q1 travel"},
  "expenseCategory": {"id": "6e5d4c3b-2a19-4f8e-8d7c-6b5a4f3e2d1c", "name": "Meals", "unitName": ""},
  "member": {"id": "3f3df320-dd95-4a42-8eae-99243fb2ea86", "name": "Brian Lockett"},
  "project": {
    "id": "095e0780-48bf-472c-8deb-2fc3ebc7d90c",
    "name": "Vendor Portal",
    "client": {"id": "4cacdf11-71d1-4fbb-90ee-b091803581b0", "name": "Acme Company"}
  }
}`
