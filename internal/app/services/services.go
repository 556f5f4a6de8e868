package services

// Services defined in this package:
// - AuthService: registration, login, two-step password reset
// - CaseService: case filing entry points and the bulk maintenance wipe
// - DashboardService: student/teacher dashboards and the student lookup API
// - ProfileService: extended student profile reads and partial updates
