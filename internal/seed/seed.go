// Package seed holds the default dataset used to populate an empty store.
// There is exactly one copy of it: the embedded backend and cmd/seed both
// read from here, so the two backends cannot drift apart.
package seed

import "github.com/csbs-dept/portal-api/internal/models"

// Each function returns a fresh slice so callers are free to assign ids or
// reorder without affecting later calls.

func Notices() []models.Notice {
	return []models.Notice{
		{Title: "Mid-Semester Examination Schedule Released", Content: "The mid-semester examination for all years will commence from March 15, 2026. Students are advised to collect their hall tickets from the department office.", Date: "2026-02-18", Category: models.NoticeUrgent, Author: "Dr. Ramesh Kumar"},
		{Title: "Workshop on Cloud Computing", Content: "A two-day workshop on AWS Cloud Services will be held on Feb 25-26. Register through the department portal. Limited seats available.", Date: "2026-02-15", Category: models.NoticeNew, Author: "Prof. Anitha S"},
		{Title: "Hackathon Registration Open", Content: "National level hackathon 'CodeStorm 2026' registrations are now open. Team size: 2-4 members. Last date to register: March 1, 2026.", Date: "2026-02-12", Category: models.NoticeNew, Author: "Prof. Karthik M"},
		{Title: "Library Book Return Reminder", Content: "All students are reminded to return borrowed books before the semester end. Penalty of Rs.5/day will be charged for overdue books.", Date: "2026-02-10", Category: models.NoticeGeneral, Author: "Librarian"},
		{Title: "Guest Lecture on AI Ethics", Content: "Distinguished guest lecture on 'Ethics in Artificial Intelligence' by Dr. Sarah Thompson from MIT. Venue: Seminar Hall, Date: March 5.", Date: "2026-02-08", Category: models.NoticeNew, Author: "Dr. Priya N"},
		{Title: "Internship Drive by Infosys", Content: "Infosys will conduct an internship drive for pre-final year students on March 10. Eligible criteria: 7.0 CGPA and above.", Date: "2026-02-05", Category: models.NoticeGeneral, Author: "Placement Cell"},
	}
}

func Events() []models.Event {
	return []models.Event{
		{Title: "TechFest 2026", Description: "Annual technical festival featuring coding competitions, robotics challenges, paper presentations, and project exhibitions. Over 20 events across 3 days.", Date: "2026-03-15", Time: "9:00 AM", Venue: "Main Campus Auditorium", Organizer: "CSBS Department", Category: models.EventTechnical, RequiresRegistration: true, EntranceFee: 200, FormFields: []models.FormField{
			{Label: "Year", Type: models.FieldSelect, Required: true, Options: "1,2,3,4"},
			{Label: "Branch", Type: models.FieldText, Required: true},
		}},
		{Title: "Workshop: Full Stack Development", Description: "Hands-on workshop covering React, Node.js, and MongoDB. Build a complete web application from scratch in two days.", Date: "2026-03-01", Time: "10:00 AM", Venue: "Computer Lab 3", Organizer: "Prof. Karthik M", Category: models.EventWorkshop, RequiresRegistration: true, FormFields: []models.FormField{
			{Label: "Year", Type: models.FieldSelect, Required: true, Options: "1,2,3,4"},
			{Label: "Laptop Available", Type: models.FieldSelect, Required: true, Options: "Yes,No"},
		}},
		{Title: "Alumni Meet 2026", Description: "Annual alumni gathering to connect current students with successful graduates. Networking sessions, panel discussions, and career guidance.", Date: "2026-03-20", Time: "11:00 AM", Venue: "Seminar Hall", Organizer: "Alumni Association", Category: models.EventGeneral},
		{Title: "Data Science Bootcamp", Description: "Intensive 3-day bootcamp on Python for Data Science, Machine Learning fundamentals, and real-world project implementation.", Date: "2026-04-05", Time: "9:30 AM", Venue: "Smart Classroom 1", Organizer: "Dr. Priya N", Category: models.EventWorkshop, RequiresRegistration: true, EntranceFee: 150, FormFields: []models.FormField{
			{Label: "Year", Type: models.FieldSelect, Required: true, Options: "2,3,4"},
			{Label: "Programming Experience", Type: models.FieldSelect, Required: true, Options: "Beginner,Intermediate,Advanced"},
		}},
		{Title: "Inter-Department Sports Meet", Description: "Annual sports competition featuring cricket, football, basketball, badminton, and athletics. Represent CSBS department!", Date: "2026-04-12", Time: "8:00 AM", Venue: "University Ground", Organizer: "Sports Committee", Category: models.EventCultural},
		{Title: "CodeStorm Hackathon 2026", Description: "National level 24-hour hackathon. Build innovative solutions for real-world problems. Team size: 2-4 members. Exciting prizes worth ₹50,000!", Date: "2026-04-20", Time: "9:00 AM", Venue: "Innovation Lab", Organizer: "Prof. Karthik M", Category: models.EventHackathon, RequiresRegistration: true, EntranceFee: 300, FormFields: []models.FormField{
			{Label: "Team Name", Type: models.FieldText, Required: true},
			{Label: "Team Size", Type: models.FieldSelect, Required: true, Options: "2,3,4"},
			{Label: "Team Members (comma separated)", Type: models.FieldTextArea, Required: true},
			{Label: "Year", Type: models.FieldSelect, Required: true, Options: "1,2,3,4"},
		}},
	}
}

func Faculty() []models.Faculty {
	return []models.Faculty{
		{Name: "Dr. Ramesh Kumar", Designation: "Professor & HOD", Qualification: "Ph.D. in Computer Science, IIT Madras", Specialization: "Artificial Intelligence, Machine Learning", Experience: "18 years", Email: "ramesh.kumar@mitm.edu", Phone: "9876543210"},
		{Name: "Dr. Priya Natarajan", Designation: "Associate Professor", Qualification: "Ph.D. in Data Science, Anna University", Specialization: "Data Analytics, Deep Learning", Experience: "14 years", Email: "priya.n@mitm.edu", Phone: "9876543211"},
		{Name: "Prof. Karthik Murugan", Designation: "Assistant Professor", Qualification: "M.Tech in Software Engineering, NIT Trichy", Specialization: "Web Technologies, Cloud Computing", Experience: "8 years", Email: "karthik.m@mitm.edu", Phone: "9876543212"},
		{Name: "Prof. Anitha Subramanian", Designation: "Assistant Professor", Qualification: "M.Tech in Information Security, VIT", Specialization: "Cybersecurity, Networking", Experience: "10 years", Email: "anitha.s@mitm.edu", Phone: "9876543213"},
		{Name: "Dr. Vijay Shankar", Designation: "Associate Professor", Qualification: "Ph.D. in IoT Systems, IISc Bangalore", Specialization: "Internet of Things, Embedded Systems", Experience: "12 years", Email: "vijay.s@mitm.edu", Phone: "9876543214"},
		{Name: "Prof. Deepa Lakshmi", Designation: "Assistant Professor", Qualification: "M.Tech in AI, PSG Tech", Specialization: "Natural Language Processing, Computer Vision", Experience: "6 years", Email: "deepa.l@mitm.edu", Phone: "9876543215"},
	}
}

func Students() []models.Student {
	return []models.Student{
		{Name: "Arun Prakash", RollNo: "CSBS2301", Year: 1, Section: "A", Email: "arun.p@student.mitm.edu", CGPA: 8.5},
		{Name: "Divya Sharma", RollNo: "CSBS2302", Year: 1, Section: "A", Email: "divya.s@student.mitm.edu", CGPA: 9.1},
		{Name: "Kiran Kumar", RollNo: "CSBS2303", Year: 1, Section: "B", Email: "kiran.k@student.mitm.edu", CGPA: 7.8},
		{Name: "Meera Rajendran", RollNo: "CSBS2201", Year: 2, Section: "A", Email: "meera.r@student.mitm.edu", CGPA: 8.9},
		{Name: "Naveen Balaji", RollNo: "CSBS2202", Year: 2, Section: "A", Email: "naveen.b@student.mitm.edu", CGPA: 8.2},
		{Name: "Preethi Ganesh", RollNo: "CSBS2203", Year: 2, Section: "B", Email: "preethi.g@student.mitm.edu", CGPA: 9.3},
		{Name: "Rahul Dravid S", RollNo: "CSBS2101", Year: 3, Section: "A", Email: "rahul.d@student.mitm.edu", CGPA: 8.7},
		{Name: "Sneha Krishnan", RollNo: "CSBS2102", Year: 3, Section: "A", Email: "sneha.k@student.mitm.edu", CGPA: 9.0},
		{Name: "Tamil Selvan", RollNo: "CSBS2103", Year: 3, Section: "B", Email: "tamil.s@student.mitm.edu", CGPA: 7.5},
		{Name: "Uma Maheshwari", RollNo: "CSBS2001", Year: 4, Section: "A", Email: "uma.m@student.mitm.edu", CGPA: 9.2},
		{Name: "Vikram Sundhar", RollNo: "CSBS2002", Year: 4, Section: "A", Email: "vikram.s@student.mitm.edu", CGPA: 8.4},
		{Name: "Yamini Priya", RollNo: "CSBS2003", Year: 4, Section: "B", Email: "yamini.p@student.mitm.edu", CGPA: 8.8},
	}
}

func Achievements() []models.Achievement {
	return []models.Achievement{
		{Title: "Smart India Hackathon Winners", Description: "Team 'CodeCrafters' from CSBS won first place at SIH 2025 with their innovative healthcare solution.", Person: "Rahul D, Sneha K, Tamil S", Type: models.AchievementStudent, Date: "2025-12-15"},
		{Title: "Best Research Paper Award", Description: "Dr. Priya N received the Best Research Paper Award at the International Conference on Data Science held in Singapore.", Person: "Dr. Priya Natarajan", Type: models.AchievementFaculty, Date: "2025-11-20"},
		{Title: "Google Summer of Code Selection", Description: "Divya Sharma selected for GSoC 2025 to work on open-source machine learning project with TensorFlow.", Person: "Divya Sharma", Type: models.AchievementStudent, Date: "2025-05-10"},
		{Title: "Campus Placement - Amazon", Description: "5 students from CSBS placed at Amazon with an average package of 28 LPA during the 2025 placement season.", Person: "Uma M, Vikram S, and 3 others", Type: models.AchievementPlacement, Date: "2025-09-25"},
		{Title: "Patent Filed for IoT Innovation", Description: "Dr. Vijay Shankar filed a patent for a novel IoT-based smart agriculture monitoring system.", Person: "Dr. Vijay Shankar", Type: models.AchievementFaculty, Date: "2025-08-14"},
		{Title: "Campus Placement - TCS Digital", Description: "12 students from CSBS secured positions at TCS Digital with packages ranging from 7-9 LPA.", Person: "Multiple Students", Type: models.AchievementPlacement, Date: "2025-10-30"},
		{Title: "ACM ICPC Regional Finalists", Description: "CSBS team qualified for ACM ICPC Asia Regional Finals, ranking among top 50 teams in India.", Person: "Arun P, Kiran K, Meera R", Type: models.AchievementStudent, Date: "2025-11-05"},
		{Title: "Best Department Award", Description: "CSBS department received the Best Department Award for academic excellence and industry collaboration.", Person: "CSBS Department", Type: models.AchievementFaculty, Date: "2025-07-20"},
	}
}
